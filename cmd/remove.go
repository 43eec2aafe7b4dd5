package cmd

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/daytrack/daytrack-go/internal/tracker"
)

// removeCommand deletes a task by id.
func removeCommand(tr *tracker.Tracker, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("daytrack remove", flag.ContinueOnError)

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return usagef("remove: missing task id")
	}
	if len(positional) > 1 {
		return usagef("remove: unexpected arguments: %v", positional[1:])
	}
	id, err := strconv.Atoi(positional[0])
	if err != nil {
		return usagef("remove: task id must be an integer, got %q", positional[0])
	}

	removed, err := tr.Remove(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed task %d: %s\n", removed.ID, removed.Description)
	return nil
}
