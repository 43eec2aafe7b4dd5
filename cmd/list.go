package cmd

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/daytrack/daytrack-go/internal/task"
	"github.com/daytrack/daytrack-go/internal/tracker"
)

// listCommand prints tasks matching the date and state filters.
func listCommand(tr *tracker.Tracker, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("daytrack list", flag.ContinueOnError)
	date := fs.String("date", "today", "Date to list (YYYY-MM-DD or 'today')")
	all := fs.Bool("all", false, "List tasks for every date")
	completedOnly := fs.Bool("completed", false, "Only completed tasks")
	pendingOnly := fs.Bool("pending", false, "Only pending tasks")

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return usagef("list: unexpected arguments: %v", positional)
	}
	if *completedOnly && *pendingOnly {
		return usagef("list: --completed and --pending are mutually exclusive")
	}

	var completed *bool
	if *completedOnly {
		v := true
		completed = &v
	} else if *pendingOnly {
		v := false
		completed = &v
	}

	scheduledFor, err := task.ParseDate(*date, time.Now)
	if err != nil {
		return err
	}

	tasks, err := tr.List(scheduledFor, *all, completed)
	if err != nil {
		return err
	}
	renderTasks(w, tasks)
	return nil
}

// renderTasks writes one line per task, or a single no-match message.
func renderTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks match the given filters.")
		return
	}
	for _, t := range tasks {
		status := "⬜"
		if t.Completed {
			status = "✅"
		}
		fmt.Fprintf(w, "[%03d] %s %s - %s\n", t.ID, status, t.ScheduledFor, t.Description)
	}
}
