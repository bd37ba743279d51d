package dto

import (
	commentDto "todoboard/internal/domains/comment/model/dto"
	"todoboard/internal/domains/todo/model"
	"todoboard/shared/constant"
	"todoboard/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateTodoRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Title    string `json:"title"    validate:"required,notblank,max=200"`
	Content  string `json:"content"  validate:"required,notblank"`
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		ID:              uuid.NewString(),
		Username:        c.Username,
		Title:           c.Title,
		Content:         c.Content,
		CreatedDatetime: timezone.Now(),
		LikedBy:         pq.StringArray{},
	}
}

// UpdateTodoRequest carries the only mutable fields of a todo.
// Clients send the whole todo back, so every other key in the body is dropped on decode.
type UpdateTodoRequest struct {
	Title   string `db:"title"   json:"title"   validate:"omitempty,notblank,max=200"`
	Content string `db:"content" json:"content" validate:"omitempty,notblank"`
}

type ToggleLikeRequest struct {
	Username string `json:"username"`
}

type TodoResponse struct {
	ID              string                       `json:"id"`
	Username        string                       `json:"username"`
	Title           string                       `json:"title"`
	Content         string                       `json:"content"`
	CreatedDatetime string                       `json:"created_datetime"`
	LikedBy         []string                     `json:"liked_by"`
	LikesCount      int                          `json:"likes_count"`
	Comments        []commentDto.CommentResponse `json:"comments"`
}

func (r *TodoResponse) FromModel(model model.Todo, comments []commentDto.CommentResponse) {
	r.ID = model.ID
	r.Username = model.Username
	r.Title = model.Title
	r.Content = model.Content
	r.CreatedDatetime = timezone.Format(model.CreatedDatetime, constant.DateFormat)

	r.LikedBy = []string{}
	if model.LikedBy != nil {
		r.LikedBy = append(r.LikedBy, model.LikedBy...)
	}

	r.LikesCount = len(r.LikedBy)

	r.Comments = []commentDto.CommentResponse{}
	if comments != nil {
		r.Comments = comments
	}
}

// FromModels builds the listing in the order of models, attaching each todo's comments.
func FromModels(models []model.Todo, comments map[string][]commentDto.CommentResponse) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod, comments[mod.ID])
	}

	return res
}

// IDs returns the primary keys of models in order.
func IDs(models []model.Todo) []string {
	ids := make([]string, len(models))
	for i, mod := range models {
		ids[i] = mod.ID
	}

	return ids
}
