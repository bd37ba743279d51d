package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// ID is an opaque server-assigned identifier. Numeric ids are accepted and kept as their decimal text.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*id = ID(text)

		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}

	*id = ID(number.String())

	return nil
}

type Todo struct {
	ID              ID        `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Username        string    `json:"username"`
	CreatedDatetime string    `json:"created_datetime"`
	LikedBy         []string  `json:"liked_by"`
	LikesCount      int       `json:"likes_count,omitempty"`
	Comments        []Comment `json:"comments,omitempty"`
}

// Liked reports whether username is in LikedBy.
func (t Todo) Liked(username string) bool {
	return slices.Contains(t.LikedBy, username)
}

func (t Todo) clone() Todo {
	t.LikedBy = slices.Clone(t.LikedBy)
	t.Comments = slices.Clone(t.Comments)

	return t
}

type Comment struct {
	ID              ID     `json:"id"`
	Todo            ID     `json:"todo"`
	Username        string `json:"username"`
	Content         string `json:"content"`
	CreatedDatetime string `json:"created_datetime"`
}

type createTodoRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type toggleLikeRequest struct {
	Username string `json:"username"`
}

type addCommentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}
