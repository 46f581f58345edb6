// Package cli is the terminal front end: one sub-command per screen.
package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/usecase/booking"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(ctx context.Context, args []string) error
}

type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type App struct {
	session      SessionService
	clubs        ClubCatalog
	courts       CourtCatalog
	workflow     *booking.Workflow
	reservations *booking.ReservationList
	clock        clock.Clock
	logger       *slog.Logger

	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	commands map[string]command
}

func NewApp(
	sess SessionService,
	clubs ClubCatalog,
	courts CourtCatalog,
	workflow *booking.Workflow,
	reservations *booking.ReservationList,
	clk clock.Clock,
	stdio IO,
	logger *slog.Logger,
) *App {
	a := &App{
		session:      sess,
		clubs:        clubs,
		courts:       courts,
		workflow:     workflow,
		reservations: reservations,
		clock:        clk,
		logger:       logger,
		in:           bufio.NewReader(stdio.In),
		out:          stdio.Out,
		errOut:       stdio.Err,
	}
	a.commands = map[string]command{
		"login":        {"sign in and remember the session", a.login},
		"logout":       {"forget the stored session", a.logout},
		"register":     {"create an account and sign in", a.register},
		"whoami":       {"show the signed-in user", a.whoami},
		"clubs":        {"list clubs, or show one with -id", a.listClubs},
		"courts":       {"list courts", a.listCourts},
		"slots":        {"show free start times for a court", a.slots},
		"book":         {"reserve a court", a.book},
		"reservations": {"list your reservations", a.listReservations},
		"cancel":       {"cancel one of your reservations", a.cancel},
	}
	return a
}

// Run executes one command and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprintf(a.errOut, "unknown command %q\n\n", args[0])
		a.usage()
		return ExitUsage
	}

	a.session.Initialize(ctx)
	err := cmd.run(ctx, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return ExitUsage
	default:
		a.printError(err)
		return ExitFailure
	}
}

func (a *App) usage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: courtbook <command> [flags]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-13s %s\n", name, a.commands[name].summary)
	}
}

func (a *App) printError(err error) {
	a.logger.Debug("command failed", slog.Any("error", err))

	e, ok := errs.As(err)
	switch {
	case httpclient.RequiresAuth(err):
		fmt.Fprintln(a.errOut, "This server only shows clubs and courts to signed-in users. Run `courtbook login` first.")
	case ok && e.Kind == errs.KindValidation && e.Field != "":
		fmt.Fprintf(a.errOut, "%s: %s\n", e.Field, e.Message)
	default:
		fmt.Fprintf(a.errOut, "error: %s\n", errs.Message(err, err.Error()))
	}
}

func (a *App) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(a.errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}
	return nil
}

// requireFlag reports a missing mandatory flag the same way flag does for bad values.
func (a *App) requireFlag(fs *flag.FlagSet, name string, set bool) error {
	if set {
		return nil
	}
	fmt.Fprintf(a.errOut, "flag -%s is required\n", name)
	fs.Usage()
	return errUsage
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.errOut, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errs.Wrap(err, "read "+label)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *App) requireSession() error {
	if !a.session.Snapshot().IsAuthenticated {
		return errs.Auth(0, "not signed in; run `courtbook login` first", nil)
	}
	return nil
}
