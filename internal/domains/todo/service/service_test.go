package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todoboard/config"
	"todoboard/infras/otel/mocks"
	"todoboard/internal/domains/activity"
	activityMocks "todoboard/internal/domains/activity/mocks"
	commentMocks "todoboard/internal/domains/comment/mocks"
	commentModel "todoboard/internal/domains/comment/model"
	commentDto "todoboard/internal/domains/comment/model/dto"
	todoMocks "todoboard/internal/domains/todo/mocks"
	"todoboard/internal/domains/todo/model"
	"todoboard/internal/domains/todo/model/dto"
	"todoboard/internal/domains/todo/service"
	"todoboard/shared/cache"
	cacheMocks "todoboard/shared/cache/mocks"
	"todoboard/shared/constant"
	"todoboard/shared/failure"
)

type fixture struct {
	repo        *todoMocks.MockTodo
	commentRepo *commentMocks.MockComment
	cache       *cacheMocks.MockRedisCache
	publisher   *activityMocks.MockPublisher
	svc         service.Todo
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:        todoMocks.NewMockTodo(ctrl),
		commentRepo: commentMocks.NewMockComment(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		publisher:   activityMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.commentRepo, cfg, f.cache, mocks.NewOtel(), f.publisher)

	return f
}

// expectInvalidation expects both cache families to be dropped once.
func (f fixture) expectInvalidation() {
	f.cache.EXPECT().Bump(gomock.Any(), "todo:version").Return(nil)
	f.cache.EXPECT().Delete(gomock.Any(), "todo:get_all").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "todo:get_all:*").Return(nil)
	f.cache.EXPECT().Delete(gomock.Any(), "todo:get").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "todo:get:*").Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) expectLoad(todo model.Todo, comments []commentModel.Comment) {
	f.repo.EXPECT().GetByID(gomock.Any(), todo.ID).Return(todo, nil)
	f.commentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(comments, nil)
}

func sampleTodo() model.Todo {
	return model.Todo{
		ID:              "todo-1",
		Username:        "alice",
		Title:           "Test Todo",
		Content:         "Test Content",
		CreatedDatetime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LikedBy:         pq.StringArray{},
	}
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, code, failure.GetCode(err))
}

func TestTodoService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateTodoRequest{
				Username: "alice",
				Title:    "Test Todo",
				Content:  "Test Content",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				f.expectInvalidation()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateTodoRequest{
				Username: "alice",
				Title:    "Test Todo",
				Content:  "Test Content",
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.ID)
			assert.NotEmpty(t, result.CreatedDatetime)
			assert.Equal(t, tt.req.Username, result.Username)
			assert.Equal(t, tt.req.Title, result.Title)
			assert.Equal(t, tt.req.Content, result.Content)
			assert.Empty(t, result.LikedBy)
			assert.Empty(t, result.Comments)
		})
	}
}

func TestTodoService_GetAll(t *testing.T) {
	older := sampleTodo()
	older.ID = "todo-old"

	newer := sampleTodo()
	newer.ID = "todo-new"
	newer.CreatedDatetime = older.CreatedDatetime.Add(time.Hour)

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantIDs   []string
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), "todo:get_all", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]dto.TodoResponse) = []dto.TodoResponse{{ID: "cached"}}

						return nil
					})
			},
			wantIDs: []string{"cached"},
		},
		{
			name: "cache miss reads todos then their comments",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Todo{newer, older}, nil)

				f.commentRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]commentModel.Comment{{ID: "c-1", TodoID: "todo-old", Username: "bob"}}, nil)

				f.cache.EXPECT().SaveIfVersion(gomock.Any(), "todo:get_all", gomock.Any(), 3600, "todo:version", int64(0)).Return(true, nil)
			},
			wantIDs: []string{"todo-new", "todo-old"},
		},
		{
			name: "empty board skips the comment query",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.cache.EXPECT().SaveIfVersion(gomock.Any(), "todo:get_all", gomock.Any(), 3600, "todo:version", int64(0)).Return(true, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "get all error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
		{
			name: "comment error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{older}, nil)
				f.commentRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("comment error"))
			},
			wantErr: true,
		},
		{
			name: "cache save failure is not fatal",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{older}, nil)
				f.commentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.cache.EXPECT().
					SaveIfVersion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, errors.New("redis down"))
			},
			wantIDs: []string{"todo-old"},
		},
		{
			name: "unreadable cache version skips the save",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), errors.New("redis down"))
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{older}, nil)
				f.commentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantIDs: []string{"todo-old"},
		},
		{
			name: "listing is saved against the version read before the query",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get_all", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(7), nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{older}, nil)
				f.commentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.cache.EXPECT().
					SaveIfVersion(gomock.Any(), "todo:get_all", gomock.Any(), 3600, "todo:version", int64(7)).
					Return(false, nil)
			},
			wantIDs: []string{"todo-old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			ids := make([]string, len(result))
			for i, todo := range result {
				ids[i] = todo.ID
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTodoService_GetAllAttachesComments(t *testing.T) {
	f := newFixture(t)

	todo := sampleTodo()

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Todo{todo}, nil)
	f.commentRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]commentModel.Comment{
			{ID: "c-1", TodoID: todo.ID, Username: "bob", Content: "first"},
			{ID: "c-2", TodoID: todo.ID, Username: "carol", Content: "second"},
		}, nil)
	f.cache.EXPECT().
		SaveIfVersion(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)

	result, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Len(t, result[0].Comments, 2)
	assert.Equal(t, "c-1", result[0].Comments[0].ID)
	assert.Equal(t, "c-2", result[0].Comments[1].ID)
}

func TestTodoService_Get(t *testing.T) {
	todo := sampleTodo()

	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful get",
			id:   todo.ID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get:todo-1", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.expectLoad(todo, nil)
				f.cache.EXPECT().SaveIfVersion(gomock.Any(), "todo:get:todo-1", gomock.Any(), 3600, "todo:version", int64(0)).Return(true, nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "todo:get:missing", gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   todo.ID,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				f.cache.EXPECT().Version(gomock.Any(), "todo:version").Return(int64(0), nil)
				f.repo.EXPECT().GetByID(gomock.Any(), todo.ID).Return(model.Todo{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, todo.ID, result.ID)
			assert.Equal(t, todo.Username, result.Username)
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	todo := sampleTodo()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateTodoRequest{Title: "Updated", Content: "Updated content"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any(), model.FieldID, model.FieldUsername).
					Return(todo, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), map[string]any{
						model.FieldTitle:   "Updated",
						model.FieldContent: "Updated content",
					}, gomock.Any()).
					Return(nil)
				f.expectInvalidation()

				updated := todo
				updated.Title = "Updated"
				updated.Content = "Updated content"
				f.expectLoad(updated, nil)
			},
		},
		{
			name:      "empty update",
			req:       dto.UpdateTodoRequest{},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateTodoRequest{Title: "Updated"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  dto.UpdateTodoRequest{Title: "Updated"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(todo, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Update(context.Background(), tt.req, todo.ID)

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Updated", result.Title)
			assert.Equal(t, todo.Username, result.Username)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	todo := sampleTodo()

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(todo, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.expectInvalidation()
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(todo, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("delete error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Delete(context.Background(), todo.ID)

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTodoService_ToggleLike(t *testing.T) {
	todo := sampleTodo()

	tests := []struct {
		name      string
		username  string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:     "successful toggle",
			username: "bob",
			setupMock: func(f fixture) {
				f.repo.EXPECT().ToggleLike(gomock.Any(), todo.ID, "bob").Return(true, nil)
				f.expectInvalidation()

				liked := todo
				liked.LikedBy = pq.StringArray{"bob"}
				f.expectLoad(liked, nil)
			},
		},
		{
			name:      "username required",
			username:  "",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:     "not found",
			username: "bob",
			setupMock: func(f fixture) {
				f.repo.EXPECT().ToggleLike(gomock.Any(), todo.ID, "bob").Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository error",
			username: "bob",
			setupMock: func(f fixture) {
				f.repo.EXPECT().ToggleLike(gomock.Any(), todo.ID, "bob").Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.ToggleLike(context.Background(), dto.ToggleLikeRequest{Username: tt.username}, todo.ID)

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{"bob"}, result.LikedBy)
			assert.Equal(t, 1, result.LikesCount)
		})
	}
}

func TestTodoService_ToggleLikeUsernameMessage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ToggleLike(context.Background(), dto.ToggleLikeRequest{}, "todo-1")

	require.Error(t, err)
	assert.Equal(t, "Username required", err.Error())
}

func TestTodoService_AddComment(t *testing.T) {
	tests := []struct {
		name      string
		req       commentDto.AddCommentRequest
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "successful comment",
			req:  commentDto.AddCommentRequest{Username: "bob", Content: "nice"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.commentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, comment commentModel.Comment) error {
						assert.Equal(t, "todo-1", comment.TodoID)

						return nil
					})
				f.expectInvalidation()
			},
		},
		{
			name: "todo not found",
			req:  commentDto.AddCommentRequest{Username: "bob", Content: "nice"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing content",
			req:  commentDto.AddCommentRequest{Username: "bob"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "username and content required",
		},
		{
			name: "todo deleted concurrently",
			req:  commentDto.AddCommentRequest{Username: "bob", Content: "nice"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.commentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "insert error",
			req:  commentDto.AddCommentRequest{Username: "bob", Content: "nice"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.commentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("insert error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.AddComment(context.Background(), tt.req, "todo-1")

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, "todo-1", result.Todo)
			assert.Equal(t, "bob", result.Username)
			assert.Equal(t, "nice", result.Content)
			assert.NotEmpty(t, result.CreatedDatetime)
		})
	}
}

func TestTodoService_DeleteComment(t *testing.T) {
	comment := commentModel.Comment{ID: "c-1", TodoID: "todo-1", Username: "bob", Content: "nice"}

	tests := []struct {
		name      string
		username  string
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name:     "author deletes",
			username: "bob",
			setupMock: func(f fixture) {
				f.commentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(comment, nil)
				f.commentRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.expectInvalidation()
			},
		},
		{
			name:     "comment not under todo",
			username: "bob",
			setupMock: func(f fixture) {
				f.commentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(commentModel.Comment{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Comment not found",
		},
		{
			name:     "someone else",
			username: "mallory",
			setupMock: func(f fixture) {
				f.commentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(comment, nil)
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "Not allowed",
		},
		{
			name:     "ownership is case sensitive",
			username: "Bob",
			setupMock: func(f fixture) {
				f.commentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(comment, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "delete error",
			username: "bob",
			setupMock: func(f fixture) {
				f.commentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(comment, nil)
				f.commentRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("delete error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.DeleteComment(context.Background(), "todo-1", "c-1", tt.username)

			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTodoService_PublishesActivity(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := todoMocks.NewMockTodo(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	publisher := activityMocks.NewMockPublisher(ctrl)

	svc := service.New(repo, commentMocks.NewMockComment(ctrl), &config.Config{}, redisCache, mocks.NewOtel(), publisher)

	published := make(chan activity.Event, 1)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	redisCache.EXPECT().Bump(gomock.Any(), gomock.Any()).Return(nil)
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event activity.Event) error {
			published <- event

			return nil
		})

	created, err := svc.Create(context.Background(), dto.CreateTodoRequest{Username: "alice", Title: "t", Content: "c"})
	require.NoError(t, err)

	select {
	case event := <-published:
		assert.Equal(t, activity.TypeTodoCreated, event.Type)
		assert.Equal(t, created.ID, event.TodoID)
		assert.Equal(t, "alice", event.Username)
	case <-time.After(time.Second):
		t.Fatal("activity event was not published")
	}
}
