package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"errors"
	"fmt"
	"todoboard/config"
	"todoboard/infras/otel"
	"todoboard/internal/domains/activity"
	commentModel "todoboard/internal/domains/comment/model"
	commentDto "todoboard/internal/domains/comment/model/dto"
	commentRepository "todoboard/internal/domains/comment/repository"
	"todoboard/internal/domains/todo/model"
	"todoboard/internal/domains/todo/model/dto"
	"todoboard/internal/domains/todo/repository"
	"todoboard/shared"
	"todoboard/shared/cache"
	"todoboard/shared/constant"
	gDto "todoboard/shared/dto"
	"todoboard/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTodo    = "todo:get"
	cacheGetAllTodo = "todo:get_all"
	cacheVersionKey = "todo:version"

	msgTodoNotFound    = "todo not found"
	msgCommentNotFound = "Comment not found"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context) ([]dto.TodoResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, req dto.ToggleLikeRequest, id string) (dto.TodoResponse, error)
	AddComment(ctx context.Context, req commentDto.AddCommentRequest, id string) (commentDto.CommentResponse, error)
	DeleteComment(ctx context.Context, id, commentID, username string) error
}

type serviceImpl struct {
	repo        repository.Todo
	commentRepo commentRepository.Comment
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	publisher   activity.Publisher
}

func New(
	repo repository.Todo,
	commentRepo commentRepository.Comment,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher activity.Publisher,
) Todo {
	return &serviceImpl{
		repo:        repo,
		commentRepo: commentRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		publisher:   publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.Finish(&err)

	todo := req.ToModel()

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeTodoCreated, todo.ID, todo.Username))

	res.FromModel(todo, nil)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.Finish(&err)

	err = s.cache.Get(ctx, cacheGetAllTodo, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheGetAllTodo).Msg("cache hit for todos")

		return res, nil
	}

	version, versionErr := s.cache.Version(ctx, cacheVersionKey)

	todos, err := s.repo.GetAll(ctx, gDto.Newest(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	comments := map[string][]commentDto.CommentResponse{}

	if len(todos) > 0 {
		models, err := s.commentRepo.GetAll(ctx, gDto.Oldest(), gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    commentModel.FieldTodoID,
					Operator: gDto.FilterOperatorIn,
					Value:    dto.IDs(todos),
					Table:    commentModel.TableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get comments")

			return nil, fmt.Errorf("failed to get comments: %w", err)
		}

		comments = commentDto.GroupByTodo(models)
	}

	res = dto.FromModels(todos, comments)

	s.saveIfUnchanged(ctx, cacheGetAllTodo, res, version, versionErr)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.Finish(&err)

	cacheKey := shared.BuildCacheKey(cacheGetTodo, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for todo")

		return res, nil
	}

	version, versionErr := s.cache.Version(ctx, cacheVersionKey)

	res, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	s.saveIfUnchanged(ctx, cacheKey, res, version, versionErr)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.Finish(&err)

	if req == (dto.UpdateTodoRequest{}) {
		return res, failure.EmptyUpdate
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldUsername)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return res, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeTodoUpdated, id, current.Username))

	return s.load(ctx, id)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.Finish(&err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldUsername)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	// comments go with the todo through ON DELETE CASCADE
	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeTodoDeleted, id, current.Username))

	return nil
}

func (s *serviceImpl) ToggleLike(ctx context.Context, req dto.ToggleLikeRequest, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleLike")
	defer scope.Finish(&err)

	if req.Username == constant.Empty {
		return res, failure.UsernameRequired
	}

	found, err := s.repo.ToggleLike(ctx, id, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to toggle like")

		return res, fmt.Errorf("failed to toggle like: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeTodoLiked, id, req.Username))

	return s.load(ctx, id)
}

func (s *serviceImpl) AddComment(ctx context.Context, req commentDto.AddCommentRequest, id string) (res commentDto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddComment")
	defer scope.Finish(&err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return res, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	if !req.Valid() {
		return res, failure.UsernameAndContentRequired
	}

	comment := req.ToModel(id)

	if err = s.commentRepo.Insert(ctx, comment); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to add comment")

		return res, fmt.Errorf("failed to add comment: %w", err)
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeCommentAdded, id, comment.Username))

	res.FromModel(comment)

	return res, nil
}

func (s *serviceImpl) DeleteComment(ctx context.Context, id, commentID, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteComment")
	defer scope.Finish(&err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    commentModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    commentID,
				Table:    commentModel.TableName,
			},
			gDto.Filter{
				Field:    commentModel.FieldTodoID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    commentModel.TableName,
			},
		},
	}

	comment, err := s.commentRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment")

		return fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.ID == constant.Empty {
		return failure.NotFound(msgCommentNotFound) // nolint:wrapcheck
	}

	if comment.Username != username {
		return failure.NotAllowed
	}

	if err = s.commentRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete comment")

		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.afterMutation(ctx, activity.NewEvent(activity.TypeCommentDeleted, id, username))

	return nil
}

// load reads a todo and its comments straight from the database.
func (s *serviceImpl) load(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	todo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == constant.Empty {
		return res, failure.NotFound(msgTodoNotFound) // nolint:wrapcheck
	}

	comments, err := s.commentRepo.GetAll(ctx, gDto.Oldest(), shared.FilterByID(id, commentModel.FieldTodoID, commentModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return res, fmt.Errorf("failed to get comments: %w", err)
	}

	res.FromModel(todo, commentDto.FromModels(comments))

	return res, nil
}

// afterMutation drops every cached read and announces the change.
// saveIfUnchanged caches a read only when no mutation bumped the version since
// the read started. Without a readable version nothing is cached.
func (s *serviceImpl) saveIfUnchanged(ctx context.Context, key string, value any, version int64, versionErr error) {
	if versionErr != nil {
		log.Error().Err(versionErr).Str("cacheKey", key).Msg("failed to read cache version, skipping cache save")

		return
	}

	saved, err := s.cache.SaveIfVersion(ctx, key, value, s.cfg.Cache.TTL, cacheVersionKey, version)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")

		return
	}

	if !saved {
		log.Debug().Str("cacheKey", key).Msg("todos changed during read, result not cached")
	}
}

func (s *serviceImpl) afterMutation(ctx context.Context, event activity.Event) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Bump(c, cacheVersionKey); err != nil {
		log.Error().Err(err).Msg("failed to bump todo cache version")
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllTodo)
	shared.InvalidateCaches(c, s.cache, cacheGetTodo)

	go func() {
		if err := s.publisher.Publish(c, event); err != nil {
			log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to publish activity event")
		}
	}()
}
