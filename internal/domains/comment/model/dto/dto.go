package dto

import (
	"todoboard/internal/domains/comment/model"
	"todoboard/shared/constant"
	"todoboard/shared/timezone"

	"github.com/google/uuid"
)

type AddCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// Valid reports whether both username and content were supplied.
func (a *AddCommentRequest) Valid() bool {
	return a.Username != constant.Empty && a.Content != constant.Empty
}

func (a *AddCommentRequest) ToModel(todoID string) model.Comment {
	return model.Comment{
		ID:              uuid.NewString(),
		TodoID:          todoID,
		Username:        a.Username,
		Content:         a.Content,
		CreatedDatetime: timezone.Now(),
	}
}

type CommentResponse struct {
	ID              string `json:"id"`
	Todo            string `json:"todo"`
	Username        string `json:"username"`
	Content         string `json:"content"`
	CreatedDatetime string `json:"created_datetime"`
}

func (r *CommentResponse) FromModel(model model.Comment) {
	r.ID = model.ID
	r.Todo = model.TodoID
	r.Username = model.Username
	r.Content = model.Content
	r.CreatedDatetime = timezone.Format(model.CreatedDatetime, constant.DateFormat)
}

// FromModels converts comments and keeps their order.
func FromModels(models []model.Comment) []CommentResponse {
	res := make([]CommentResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// GroupByTodo converts comments into responses keyed by their owning todo.
func GroupByTodo(models []model.Comment) map[string][]CommentResponse {
	grouped := make(map[string][]CommentResponse)

	for _, mod := range models {
		var res CommentResponse
		res.FromModel(mod)

		grouped[mod.TodoID] = append(grouped[mod.TodoID], res)
	}

	return grouped
}
