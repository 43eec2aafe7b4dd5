package cmd

import (
	"context"
	"flag"

	"github.com/daytrack/daytrack-go/internal/tracker"
	"github.com/daytrack/daytrack-go/internal/ui"
)

// tuiCommand launches the interactive task view.
func tuiCommand(ctx context.Context, tr *tracker.Tracker, args []string) error {
	fs := flag.NewFlagSet("daytrack tui", flag.ContinueOnError)

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return usagef("tui: unexpected arguments: %v", positional)
	}

	return ui.RunTUI(ctx, tr, tr.Path())
}
