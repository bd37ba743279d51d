package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"todoboard/infras/otel"
	"todoboard/infras/postgres"
	"todoboard/internal/domains/todo/model"
	gDto "todoboard/shared/dto"
	gRepo "todoboard/shared/repository"
)

const toggleLikeQuery = `UPDATE todos
SET liked_by = CASE
	WHEN :username = ANY(liked_by) THEN array_remove(liked_by, CAST(:username AS text))
	ELSE array_append(liked_by, CAST(:username AS text))
END
WHERE id = :id`

type Todo interface {
	Insert(ctx context.Context, model model.Todo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Todo, error)
	GetByID(ctx context.Context, id string, columns ...string) (model.Todo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ToggleLike(ctx context.Context, id, username string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ToggleLike flips username's membership of liked_by in a single statement.
// It reports false when no todo has the given id.
func (r *repositoryImpl) ToggleLike(ctx context.Context, id, username string) (bool, error) {
	affected, err := r.NamedExec(ctx, "ToggleLike", toggleLikeQuery, map[string]any{
		model.FieldID:       id,
		model.FieldUsername: username,
	})
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}
