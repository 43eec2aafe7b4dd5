// Package cmd implements the CLI command structure for daytrack.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/daytrack/daytrack-go/internal/config"
	"github.com/daytrack/daytrack-go/internal/logging"
	"github.com/daytrack/daytrack-go/internal/store"
	"github.com/daytrack/daytrack-go/internal/task"
	"github.com/daytrack/daytrack-go/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// usageError marks argument-syntax failures so the entrypoint can exit
// with the conventional parser code instead of the operation-error code.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error.
func (e *usageError) Unwrap() error {
	return e.err
}

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Run to a process exit code:
// 0 on success, 2 for argument-syntax errors, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	var de *task.InvalidDateError
	if errors.As(err, &ue) || errors.As(err, &de) || errors.Is(err, flag.ErrHelp) {
		return 2
	}
	return 1
}

// Run executes the daytrack CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("daytrack", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &usageError{err: err}
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		fmt.Printf("daytrack %s\n", Version)
		return nil
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		printUsage(fs, os.Stderr)
		return usagef("missing command")
	}
	subcommand := remaining[0]
	remaining = remaining[1:]

	logger := logging.New(os.Stderr, logging.Options{
		Level:           logging.ParseLevel(cfg.LogLevel),
		ReportTimestamp: cfg.LogTimestamps,
		Prefix:          "daytrack",
	})
	logger.Debug("using tasks file", "path", cfg.TasksFile)

	st := store.New(cfg.TasksFile)
	tr := tracker.New(st, logger)

	switch subcommand {
	case "add":
		return addCommand(tr, remaining, os.Stdout)
	case "list":
		return listCommand(tr, remaining, os.Stdout)
	case "done":
		return doneCommand(tr, remaining, os.Stdout)
	case "remove":
		return removeCommand(tr, remaining, os.Stdout)
	case "doctor":
		return doctorCommand(cfg, st, remaining, os.Stdout)
	case "tui":
		return tuiCommand(ctx, tr, remaining)
	case "version", "--version", "-v":
		fmt.Printf("daytrack %s\n", Version)
		return nil
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		printUsage(fs, os.Stderr)
		return usagef("unknown command: %s", subcommand)
	}
}

// parseCommandArgs parses a subcommand flag set while allowing flags to
// appear after positional arguments, the way the tool has always been
// invoked (e.g. "done 3 --undone"). It returns the positional arguments.
func parseCommandArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return nil, &usageError{err: err}
		}
		rest = fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `daytrack - personal daily task tracker

Usage:
  daytrack [global flags] <command> [command flags]

Commands:
  add <description> [--date YYYY-MM-DD|today]
        Add a new task (date defaults to today)
  list [--date YYYY-MM-DD|today] [--all] [--completed|--pending]
        List tasks for a date, or all of them
  done <id> [--undone]
        Mark a task completed (or pending again with --undone)
  remove <id>
        Remove a task
  doctor
        Check config and tasks file health
  tui
        Interactive task view
  version
        Show version
  help
        Show this help

Global flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
