// Command watersort solves water sort puzzles from files or built-in presets.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/comalice/watersort/internal/core"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUnsolved    = 2
	exitInterrupted = 130
)

// errUnsolved signals a completed search without a solution. The outcome
// has already been printed.
var errUnsolved = errors.New("no solution found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if cerr := a.close(context.WithoutCancel(ctx)); cerr != nil && err == nil {
		err = cerr
	}
	return exitCode(err, stderr)
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUnsolved):
		return exitUnsolved
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Interrupted:", err)
		return exitInterrupted
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}

// solverOptions translates configuration into core options.
func (a *app) solverOptions() []core.Option {
	return []core.Option{
		core.WithMaxIterations(a.cfg.Search.MaxIterations),
		core.WithProgressInterval(a.cfg.Search.ProgressInterval),
		core.WithLogger(a.logger),
		core.WithPublisher(a.publisher),
	}
}
