// Package cli is the command line front end of the board.
package cli

//go:generate go run go.uber.org/mock/mockgen -source=./cli.go -destination=./mocks/board_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
	"todoboard/client"
	"todoboard/shared/identity"
	"todoboard/shared/timeago"

	"github.com/rs/zerolog/log"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	errNotOwner       = errors.New("you can only change what you created")
	errTodoNotFound   = errors.New("todo not found")
	errCommentMissing = errors.New("comment not found")
)

// Board is the subset of the API client the CLI drives.
type Board interface {
	ListTodos(ctx context.Context) ([]client.Todo, error)
	CreateTodo(ctx context.Context, username, title, content string) (client.Todo, error)
	UpdateTodo(ctx context.Context, todo client.Todo) (client.Todo, error)
	DeleteTodo(ctx context.Context, id client.ID) error
	ToggleLike(ctx context.Context, todo client.Todo, username string) (client.Todo, error)
	AddComment(ctx context.Context, todoID client.ID, username, content string) (client.Comment, error)
	DeleteComment(ctx context.Context, todoID, commentID client.ID, username string) error
}

type Runner struct {
	board    Board
	username string
	out      io.Writer
	errOut   io.Writer
	styles   styles
	now      func() time.Time
}

func New(board Board, username string, out, errOut io.Writer) *Runner {
	return &Runner{
		board:    board,
		username: username,
		out:      out,
		errOut:   errOut,
		styles:   newStyles(out),
		now:      time.Now,
	}
}

type command struct {
	usage    string
	args     int
	needUser bool
	run      func(r *Runner, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"ls": {
		usage: "ls",
		run: func(r *Runner, ctx context.Context, _ []string) error {
			return r.render(ctx)
		},
	},
	"add": {
		usage:    "add <title> <content>",
		args:     2,
		needUser: true,
		run:      (*Runner).add,
	},
	"edit": {
		usage:    "edit <id> <title> <content>",
		args:     3,
		needUser: true,
		run:      (*Runner).edit,
	},
	"rm": {
		usage:    "rm <id>",
		args:     1,
		needUser: true,
		run:      (*Runner).remove,
	},
	"like": {
		usage:    "like <id>",
		args:     1,
		needUser: true,
		run:      (*Runner).like,
	},
	"comment": {
		usage:    "comment <id> <text>",
		args:     2,
		needUser: true,
		run:      (*Runner).comment,
	},
	"uncomment": {
		usage:    "uncomment <id> <commentId>",
		args:     2,
		needUser: true,
		run:      (*Runner).uncomment,
	},
}

// Run executes one command and returns the process exit code.
func (r *Runner) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		r.PrintHelp()

		return ExitUsage
	}

	name, rest := args[0], args[1:]
	if name == "help" || name == "-h" || name == "--help" {
		r.PrintHelp()

		return ExitOK
	}

	cmd, ok := commands[name]
	if !ok {
		r.fail("unknown command: " + name)
		r.PrintHelp()

		return ExitUsage
	}

	if len(rest) != cmd.args {
		r.fail("usage: board " + cmd.usage)

		return ExitUsage
	}

	if cmd.needUser {
		if err := identity.Validate(r.username); err != nil {
			r.fail(fmt.Sprintf("%s: pass -u or set BOARD_USERNAME", err))

			return ExitUsage
		}
	}

	if err := cmd.run(r, ctx, rest); err != nil {
		log.Debug().Err(errors.Unwrap(err)).Str("command", name).Msg("board command failed")
		r.fail(err.Error())

		return ExitError
	}

	return ExitOK
}

func (r *Runner) PrintHelp() {
	fmt.Fprint(r.out, `board - shared to-do board

Usage:
  board [-api URL] [-u NAME] <command> [args]

Commands:
  ls                            List todos, newest first
  add <title> <content>         Create a todo
  edit <id> <title> <content>   Change a todo you created
  rm <id>                       Delete a todo you created
  like <id>                     Like or unlike a todo
  comment <id> <text>           Comment on a todo
  uncomment <id> <commentId>    Delete a comment you wrote
`)
}

func (r *Runner) add(ctx context.Context, args []string) error {
	todo, err := r.board.CreateTodo(ctx, r.username, args[0], args[1])
	if err != nil {
		return err
	}

	r.ok("created " + string(todo.ID))

	r.rerender(ctx)

	return nil
}

func (r *Runner) edit(ctx context.Context, args []string) error {
	todo, err := r.find(ctx, client.ID(args[0]))
	if err != nil {
		return err
	}

	if !identity.Owns(todo.Username, r.username) {
		return errNotOwner
	}

	todo.Title, todo.Content = args[1], args[2]

	if _, err := r.board.UpdateTodo(ctx, todo); err != nil {
		return err
	}

	r.ok("updated " + string(todo.ID))

	r.rerender(ctx)

	return nil
}

func (r *Runner) remove(ctx context.Context, args []string) error {
	todo, err := r.find(ctx, client.ID(args[0]))
	if err != nil {
		return err
	}

	if !identity.Owns(todo.Username, r.username) {
		return errNotOwner
	}

	if err := r.board.DeleteTodo(ctx, todo.ID); err != nil {
		return err
	}

	r.ok("deleted " + string(todo.ID))

	r.rerender(ctx)

	return nil
}

func (r *Runner) like(ctx context.Context, args []string) error {
	todo, err := r.find(ctx, client.ID(args[0]))
	if err != nil {
		return err
	}

	updated, err := r.board.ToggleLike(ctx, todo, r.username)
	if err != nil {
		return err
	}

	if updated.Liked(r.username) {
		r.ok("liked " + string(todo.ID))
	} else {
		r.ok("unliked " + string(todo.ID))
	}

	r.rerender(ctx)

	return nil
}

func (r *Runner) comment(ctx context.Context, args []string) error {
	if _, err := r.board.AddComment(ctx, client.ID(args[0]), r.username, args[1]); err != nil {
		return err
	}

	r.ok("commented on " + args[0])

	r.rerender(ctx)

	return nil
}

func (r *Runner) uncomment(ctx context.Context, args []string) error {
	todo, err := r.find(ctx, client.ID(args[0]))
	if err != nil {
		return err
	}

	index := slices.IndexFunc(todo.Comments, func(c client.Comment) bool {
		return c.ID == client.ID(args[1])
	})
	if index < 0 {
		return errCommentMissing
	}

	if !identity.Owns(todo.Comments[index].Username, r.username) {
		return errNotOwner
	}

	if err := r.board.DeleteComment(ctx, todo.ID, todo.Comments[index].ID, r.username); err != nil {
		return err
	}

	r.ok("deleted comment " + args[1])

	r.rerender(ctx)

	return nil
}

func (r *Runner) find(ctx context.Context, id client.ID) (client.Todo, error) {
	todos, err := r.board.ListTodos(ctx)
	if err != nil {
		return client.Todo{}, err
	}

	index := slices.IndexFunc(todos, func(t client.Todo) bool { return t.ID == id })
	if index < 0 {
		return client.Todo{}, errTodoNotFound
	}

	return todos[index], nil
}

// rerender shows the list after a mutation already succeeded. A failed fetch only
// warns so the exit code keeps reporting the mutation.
func (r *Runner) rerender(ctx context.Context) {
	if err := r.render(ctx); err != nil {
		r.warn(err.Error() + ": the change was saved but the list could not be refreshed")
	}
}

func (r *Runner) render(ctx context.Context) error {
	todos, err := r.board.ListTodos(ctx)
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		fmt.Fprintln(r.out, r.styles.muted.Render("No todos yet."))

		return nil
	}

	for _, todo := range todos {
		fmt.Fprintln(r.out, r.styles.panel.Render(r.todoLines(todo)))
	}

	return nil
}

func (r *Runner) todoLines(todo client.Todo) string {
	now := r.now()

	heart := "♡"
	if todo.Liked(r.username) {
		heart = r.styles.liked.Render("♥")
	}

	lines := []string{
		r.styles.title.Render(todo.Title) + " " + r.styles.muted.Render("#"+string(todo.ID)),
		r.styles.author.Render(todo.Username) + " " + r.styles.muted.Render(r.label(todo.CreatedDatetime, now)),
		todo.Content,
		fmt.Sprintf("%s %d  💬 %d", heart, len(todo.LikedBy), len(todo.Comments)),
	}

	for _, c := range todo.Comments {
		line := fmt.Sprintf("%s %s %s %s",
			r.styles.author.Render(c.Username),
			c.Content,
			r.styles.muted.Render(r.label(c.CreatedDatetime, now)),
			r.styles.muted.Render("#"+string(c.ID)),
		)
		lines = append(lines, r.styles.comment.Render(line))
	}

	return strings.Join(lines, "\n")
}

func (r *Runner) label(timestamp string, now time.Time) string {
	label, err := timeago.Parse(timestamp, now)
	if err != nil {
		log.Debug().Err(err).Msg("unreadable timestamp")

		return ""
	}

	return label
}

func (r *Runner) ok(msg string) {
	fmt.Fprintln(r.out, r.styles.success.Render("✔ "+msg))
}

func (r *Runner) warn(msg string) {
	fmt.Fprintln(r.errOut, r.styles.warning.Render("! "+msg))
}

func (r *Runner) fail(msg string) {
	fmt.Fprintln(r.errOut, r.styles.failure.Render("✖ "+msg))
}
