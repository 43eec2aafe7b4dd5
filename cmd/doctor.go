package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/daytrack/daytrack-go/internal/config"
	"github.com/daytrack/daytrack-go/internal/store"
)

// doctorCommand checks config and tasks file health.
func doctorCommand(cfg *config.Config, st *store.Store, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("daytrack doctor", flag.ContinueOnError)

	positional, err := parseCommandArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return usagef("doctor: unexpected arguments: %v", positional)
	}

	fmt.Fprintln(w, "Daytrack Doctor")
	fmt.Fprintln(w, "===============")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintf(w, "Tasks file: %s\n", cfg.TasksFile)
	if _, err := os.Stat(cfg.TasksFile); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⬜ Not created yet (an empty collection; 'add' will create it)")
			fmt.Fprintln(w)
			return nil
		}
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(w, "  ✅ Exists")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Record decode:")
	tasks, err := st.Load()
	if err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ %d task(s) decoded\n", len(tasks))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Schema validation:")
	report, err := st.ValidateFile()
	if err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else if !report.Valid {
		for _, verr := range report.Errors {
			fmt.Fprintf(w, "  ❌ %v\n", verr)
		}
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ Valid")
	}
	fmt.Fprintln(w)

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}
