package model

import "time"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID              = "id"
	FieldTodoID          = "todo_id"
	FieldUsername        = "username"
	FieldContent         = "content"
	FieldCreatedDatetime = "created_datetime"
)

type Comment struct {
	ID              string    `db:"id"`
	TodoID          string    `db:"todo_id"`
	Username        string    `db:"username"`
	Content         string    `db:"content"`
	CreatedDatetime time.Time `db:"created_datetime"`
}
