package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/capture"
	"entrega-tracker/internal/logx"
)

// Process exit codes. Usage mistakes and rejected input share one code
// so scripts can tell "fix the command" from "the service is down".
const (
	exitOK               = 0
	exitError            = 1
	exitUsage            = 2
	exitNotAuthenticated = 3
	exitNotFound         = 4
	exitUnavailable      = 5
)

var errUsage = errors.New("usage")

// App is the command-line surface over the delivery tracking client.
type App struct {
	store    deliveryStore
	session  sessionContext
	auth     authenticator
	workflow WorkflowFactory
	logger   logx.Logger
	out      io.Writer
	errOut   io.Writer
}

// New creates the CLI app.
func New(
	store deliveryStore,
	session sessionContext,
	auth authenticator,
	workflow WorkflowFactory,
	logger logx.Logger,
	out, errOut io.Writer,
) *App {
	return &App{
		store:    store,
		session:  session,
		auth:     auth,
		workflow: workflow,
		logger:   logger,
		out:      out,
		errOut:   errOut,
	}
}

// Run dispatches one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, rest)
	case "logout":
		err = a.cmdLogout()
	case "list":
		err = a.cmdList(ctx, rest, nil)
	case "completed":
		err = a.cmdCompleted(ctx, rest)
	case "add":
		err = a.cmdAdd(ctx, rest)
	case "show":
		err = a.cmdShow(ctx, rest)
	case "confirm":
		err = a.cmdConfirm(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return exitOK
	default:
		fmt.Fprintf(a.errOut, "unknown command %q\n", cmd)
		a.usage()
		return exitUsage
	}

	return a.report(cmd, err)
}

// report maps command errors onto user-facing messages and exit codes.
func (a *App) report(cmd string, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(a.errOut, err)
		return exitUsage
	case errors.Is(err, apperr.NotAuthenticated):
		fmt.Fprintln(a.errOut, `not logged in: run "entrega login" first`)
		return exitNotAuthenticated
	case errors.Is(err, apperr.NotFound):
		fmt.Fprintln(a.errOut, "delivery not found")
		return exitNotFound
	case errors.Is(err, apperr.IncompleteProof):
		fmt.Fprintln(a.errOut, err)
		return exitUsage
	case errors.Is(err, apperr.Invalid):
		fmt.Fprintln(a.errOut, err)
		return exitUsage
	case errors.Is(err, capture.ErrCancelled):
		fmt.Fprintln(a.errOut, "photo capture cancelled, delivery not confirmed")
		return exitUsage
	case errors.Is(err, apperr.Unavailable):
		fmt.Fprintln(a.errOut, "service unavailable, try again")
		return exitUnavailable
	default:
		a.logger.Error("command failed", logx.String("command", cmd), logx.Any("err", err))
		fmt.Fprintln(a.errOut, err)
		return exitError
	}
}

func (a *App) usage() {
	fmt.Fprint(a.errOut, `usage: entrega <command> [flags]

commands:
  login      --email --password    authenticate and open a session
  logout                           close the session
  list       [--search]            deliveries of the logged-in user
  completed  [--search]            completed deliveries only
  add        --receiver --cep ...  register a new delivery
  show       <id>                  delivery details and map position
  confirm    <id> --received-by --cpf --relation --photo
                                   submit the proof of receipt
`)
}
