package client

import (
	"errors"
)

// Operation names one client call. Each has a fixed user-facing failure message.
type Operation int

const (
	OpListTodos Operation = iota + 1
	OpCreateTodo
	OpUpdateTodo
	OpDeleteTodo
	OpToggleLike
	OpAddComment
	OpDeleteComment
)

var operationNames = map[Operation]string{
	OpListTodos:     "list_todos",
	OpCreateTodo:    "create_todo",
	OpUpdateTodo:    "update_todo",
	OpDeleteTodo:    "delete_todo",
	OpToggleLike:    "toggle_like",
	OpAddComment:    "add_comment",
	OpDeleteComment: "delete_comment",
}

var operationMessages = map[Operation]string{
	OpListTodos:     "Failed to fetch todos",
	OpCreateTodo:    "Failed to create todo",
	OpUpdateTodo:    "Failed to update todo",
	OpDeleteTodo:    "Failed to delete todo",
	OpToggleLike:    "Failed to like/unlike todo",
	OpAddComment:    "Failed to add comment",
	OpDeleteComment: "Failed to delete comment",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}

	return "unknown"
}

// Message is the text shown to the user when o fails.
func (o Operation) Message() string {
	if msg, ok := operationMessages[o]; ok {
		return msg
	}

	return "Request failed"
}

// ErrUnexpectedStatus is wrapped by every RequestError caused by a non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// RequestError is the only error the client returns from a round trip.
// StatusCode is zero when no response was received.
type RequestError struct {
	Op         Operation
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return e.Op.Message()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// OperationOf returns the operation that produced err.
func OperationOf(err error) (Operation, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Op, true
	}

	return 0, false
}
