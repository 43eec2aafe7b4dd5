package cmd

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/daytrack/daytrack-go/internal/tracker"
)

// doneCommand marks a task completed, or pending again with --undone.
func doneCommand(tr *tracker.Tracker, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("daytrack done", flag.ContinueOnError)
	undone := fs.Bool("undone", false, "Mark the task pending again")

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return usagef("done: missing task id")
	}
	if len(positional) > 1 {
		return usagef("done: unexpected arguments: %v", positional[1:])
	}
	id, err := strconv.Atoi(positional[0])
	if err != nil {
		return usagef("done: task id must be an integer, got %q", positional[0])
	}

	updated, err := tr.SetCompletion(id, !*undone)
	if err != nil {
		return err
	}
	state := "completed"
	if !updated.Completed {
		state = "pending"
	}
	fmt.Fprintf(w, "Task %d is now %s.\n", updated.ID, state)
	return nil
}
