package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID              = "id"
	FieldUsername        = "username"
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldCreatedDatetime = "created_datetime"
	FieldLikedBy         = "liked_by"
)

type Todo struct {
	ID              string         `db:"id"`
	Username        string         `db:"username"`
	Title           string         `db:"title"`
	Content         string         `db:"content"`
	CreatedDatetime time.Time      `db:"created_datetime"`
	LikedBy         pq.StringArray `db:"liked_by"`
}

// Liked reports whether username is in the liked_by set.
func (t Todo) Liked(username string) bool {
	for _, name := range t.LikedBy {
		if name == username {
			return true
		}
	}

	return false
}
