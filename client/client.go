// Package client talks to the board service's REST collection.
//
// Every call is one blocking round trip with no retries. Any failure comes back
// as a *RequestError whose message depends only on the operation. The client keeps
// one snapshot of the collection and drops it after every successful mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"todoboard/shared/constant"

	"github.com/rs/zerolog/log"
)

type Option func(*Client)

// WithHTTPClient replaces the default zero-timeout http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

type Client struct {
	baseURL string
	http    *http.Client

	mu         sync.Mutex
	snapshot   []Todo
	valid      bool
	generation uint64
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListTodos returns the collection, newest first. The snapshot is served while valid.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	c.mu.Lock()
	if c.valid {
		todos := cloneTodos(c.snapshot)
		c.mu.Unlock()

		return todos, nil
	}
	generation := c.generation
	c.mu.Unlock()

	return c.fetch(ctx, generation)
}

// Refresh refetches the collection regardless of the snapshot.
// The current snapshot stays in place if the fetch fails.
func (c *Client) Refresh(ctx context.Context) ([]Todo, error) {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.mu.Unlock()

	return c.fetch(ctx, generation)
}

// Invalidate drops the snapshot so the next ListTodos hits the server.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.valid = false
	c.snapshot = nil
}

func (c *Client) fetch(ctx context.Context, generation uint64) ([]Todo, error) {
	var todos []Todo
	if err := c.do(ctx, OpListTodos, http.MethodGet, c.collectionURL(), nil, &todos); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []Todo{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// a mutation finished while we were fetching; keep the result but not as the snapshot
	if generation == c.generation {
		c.snapshot = todos
		c.valid = true
	}

	return cloneTodos(todos), nil
}

func (c *Client) CreateTodo(ctx context.Context, username, title, content string) (Todo, error) {
	var todo Todo

	body := createTodoRequest{Username: username, Title: title, Content: content}
	if err := c.do(ctx, OpCreateTodo, http.MethodPost, c.collectionURL(), body, &todo); err != nil {
		return Todo{}, err
	}

	c.Invalidate()

	return todo, nil
}

// UpdateTodo sends the whole todo. The server only applies title and content.
func (c *Client) UpdateTodo(ctx context.Context, todo Todo) (Todo, error) {
	var updated Todo
	if err := c.do(ctx, OpUpdateTodo, http.MethodPatch, c.itemURL(todo.ID), todo, &updated); err != nil {
		return Todo{}, err
	}

	c.Invalidate()

	return updated, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id ID) error {
	if err := c.do(ctx, OpDeleteTodo, http.MethodDelete, c.itemURL(id), nil, nil); err != nil {
		return err
	}

	c.Invalidate()

	return nil
}

// ToggleLike adds username to the todo's likes, or removes it when already present.
func (c *Client) ToggleLike(ctx context.Context, todo Todo, username string) (Todo, error) {
	var updated Todo

	target := c.itemURL(todo.ID) + "toggle_like/"
	if err := c.do(ctx, OpToggleLike, http.MethodPost, target, toggleLikeRequest{Username: username}, &updated); err != nil {
		return Todo{}, err
	}

	c.Invalidate()

	return updated, nil
}

func (c *Client) AddComment(ctx context.Context, todoID ID, username, content string) (Comment, error) {
	var comment Comment

	target := c.itemURL(todoID) + "add_comment/"
	body := addCommentRequest{Username: username, Content: content}

	if err := c.do(ctx, OpAddComment, http.MethodPost, target, body, &comment); err != nil {
		return Comment{}, err
	}

	c.Invalidate()

	return comment, nil
}

// DeleteComment asks the server to delete a comment. Only its author may do so.
func (c *Client) DeleteComment(ctx context.Context, todoID, commentID ID, username string) error {
	target := fmt.Sprintf("%scomments/%s/?%s=%s",
		c.itemURL(todoID),
		url.PathEscape(string(commentID)),
		constant.RequestParamUsername,
		url.QueryEscape(username),
	)

	if err := c.do(ctx, OpDeleteComment, http.MethodDelete, target, nil, nil); err != nil {
		return err
	}

	c.Invalidate()

	return nil
}

func (c *Client) collectionURL() string {
	return c.baseURL + "/"
}

func (c *Client) itemURL(id ID) string {
	return c.baseURL + "/" + url.PathEscape(string(id)) + "/"
}

func (c *Client) do(ctx context.Context, op Operation, method, target string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("encode request body: %w", err)}
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	response, err := c.http.Do(request)
	if err != nil {
		log.Debug().Err(err).Str("op", op.String()).Msg("board request failed")

		return &RequestError{Op: op, Err: err}
	}
	defer response.Body.Close()

	log.Debug().Str("op", op.String()).Str("method", method).Int("status", response.StatusCode).Msg("board request")

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, response.Body)

		return &RequestError{
			Op:         op,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("%w: %s %s: %s", ErrUnexpectedStatus, method, target, response.Status),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return &RequestError{Op: op, StatusCode: response.StatusCode, Err: fmt.Errorf("decode response body: %w", err)}
	}

	return nil
}

func cloneTodos(todos []Todo) []Todo {
	out := make([]Todo, len(todos))
	for i, todo := range todos {
		out[i] = todo.clone()
	}

	return out
}
