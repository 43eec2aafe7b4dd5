package cmd

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/daytrack/daytrack-go/internal/task"
	"github.com/daytrack/daytrack-go/internal/tracker"
)

// addCommand adds a new task scheduled for the given date.
func addCommand(tr *tracker.Tracker, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("daytrack add", flag.ContinueOnError)
	date := fs.String("date", "today", "Scheduled date (YYYY-MM-DD or 'today')")

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return usagef("add: missing task description")
	}
	if len(positional) > 1 {
		return usagef("add: unexpected arguments: %v", positional[1:])
	}
	description := positional[0]
	if description == "" {
		return usagef("add: task description must not be empty")
	}

	scheduledFor, err := task.ParseDate(*date, time.Now)
	if err != nil {
		return err
	}

	added, err := tr.Add(description, scheduledFor)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Added task %d: %s\n", added.ID, added.Description)
	return nil
}
