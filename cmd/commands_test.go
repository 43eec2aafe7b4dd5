package cmd

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daytrack/daytrack-go/internal/config"
	"github.com/daytrack/daytrack-go/internal/store"
	"github.com/daytrack/daytrack-go/internal/task"
	"github.com/daytrack/daytrack-go/internal/tracker"
)

func newFlagSetForTest() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func newTestTracker(t *testing.T) (*tracker.Tracker, *store.Store) {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "tasks.json"))
	return tracker.New(st, nil), st
}

func TestAddCommand(t *testing.T) {
	t.Run("adds with explicit date", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		if err := addCommand(tr, []string{"Buy milk", "--date", "2024-05-01"}, &out); err != nil {
			t.Fatalf("addCommand failed: %v", err)
		}
		if got := out.String(); got != "Added task 1: Buy milk\n" {
			t.Errorf("output: got %q", got)
		}
	})

	t.Run("flag before positional", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		if err := addCommand(tr, []string{"--date", "2024-05-01", "Buy milk"}, &out); err != nil {
			t.Fatalf("addCommand failed: %v", err)
		}
		if !strings.Contains(out.String(), "Buy milk") {
			t.Errorf("output: got %q", out.String())
		}
	})

	t.Run("date defaults to today", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		if err := addCommand(tr, []string{"Buy milk"}, &out); err != nil {
			t.Fatalf("addCommand failed: %v", err)
		}
		tasks, err := tr.List("", true, nil)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(tasks) != 1 || len(tasks[0].ScheduledFor) != 10 {
			t.Errorf("got %+v, want one task scheduled for a YYYY-MM-DD date", tasks)
		}
	})

	t.Run("rejects bad date before any file I/O", func(t *testing.T) {
		tr, st := newTestTracker(t)
		var out bytes.Buffer

		err := addCommand(tr, []string{"Buy milk", "--date", "someday"}, &out)
		var derr *task.InvalidDateError
		if !errors.As(err, &derr) {
			t.Fatalf("got %v, want InvalidDateError", err)
		}
		if tasks, _ := st.Load(); len(tasks) != 0 {
			t.Error("no task should have been persisted")
		}
	})

	t.Run("rejects missing description", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		err := addCommand(tr, nil, &out)
		if ExitCode(err) != 2 {
			t.Errorf("exit code: got %d, want 2 (err %v)", ExitCode(err), err)
		}
	})

	t.Run("rejects empty description", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		err := addCommand(tr, []string{""}, &out)
		if ExitCode(err) != 2 {
			t.Errorf("exit code: got %d, want 2 (err %v)", ExitCode(err), err)
		}
	})
}

func TestListCommand(t *testing.T) {
	seed := func(t *testing.T) *tracker.Tracker {
		t.Helper()
		tr, _ := newTestTracker(t)
		if _, err := tr.Add("Đọc sách", "2024-05-01"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if _, err := tr.Add("Write report", "2024-05-02"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if _, err := tr.SetCompletion(1, true); err != nil {
			t.Fatalf("SetCompletion failed: %v", err)
		}
		return tr
	}

	t.Run("lists a date with padded ids and status boxes", func(t *testing.T) {
		tr := seed(t)
		var out bytes.Buffer

		if err := listCommand(tr, []string{"--date", "2024-05-01"}, &out); err != nil {
			t.Fatalf("listCommand failed: %v", err)
		}
		if got := out.String(); got != "[001] ✅ 2024-05-01 - Đọc sách\n" {
			t.Errorf("output: got %q", got)
		}
	})

	t.Run("lists everything with --all", func(t *testing.T) {
		tr := seed(t)
		var out bytes.Buffer

		if err := listCommand(tr, []string{"--all"}, &out); err != nil {
			t.Fatalf("listCommand failed: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("lines: got %d, want 2 (%q)", len(lines), out.String())
		}
		if !strings.HasPrefix(lines[0], "[001]") || !strings.HasPrefix(lines[1], "[002] ⬜") {
			t.Errorf("output: got %q", out.String())
		}
	})

	t.Run("pending filter with --all", func(t *testing.T) {
		tr := seed(t)
		var out bytes.Buffer

		if err := listCommand(tr, []string{"--all", "--pending"}, &out); err != nil {
			t.Fatalf("listCommand failed: %v", err)
		}
		if !strings.Contains(out.String(), "Write report") || strings.Contains(out.String(), "Đọc sách") {
			t.Errorf("output: got %q", out.String())
		}
	})

	t.Run("no matches prints a single message", func(t *testing.T) {
		tr := seed(t)
		var out bytes.Buffer

		if err := listCommand(tr, []string{"--date", "2030-01-01"}, &out); err != nil {
			t.Fatalf("listCommand failed: %v", err)
		}
		if got := out.String(); got != "No tasks match the given filters.\n" {
			t.Errorf("output: got %q", got)
		}
	})

	t.Run("completed and pending are mutually exclusive", func(t *testing.T) {
		tr := seed(t)
		var out bytes.Buffer

		err := listCommand(tr, []string{"--completed", "--pending"}, &out)
		if ExitCode(err) != 2 {
			t.Errorf("exit code: got %d, want 2 (err %v)", ExitCode(err), err)
		}
	})
}

func TestDoneCommand(t *testing.T) {
	t.Run("marks completed then pending", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		if _, err := tr.Add("Buy milk", "2024-05-01"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		var out bytes.Buffer
		if err := doneCommand(tr, []string{"1"}, &out); err != nil {
			t.Fatalf("doneCommand failed: %v", err)
		}
		if got := out.String(); got != "Task 1 is now completed.\n" {
			t.Errorf("output: got %q", got)
		}

		out.Reset()
		if err := doneCommand(tr, []string{"1", "--undone"}, &out); err != nil {
			t.Fatalf("doneCommand --undone failed: %v", err)
		}
		if got := out.String(); got != "Task 1 is now pending.\n" {
			t.Errorf("output: got %q", got)
		}
	})

	t.Run("unknown id propagates NotFoundError", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		err := doneCommand(tr, []string{"7"}, &out)
		var nerr *task.NotFoundError
		if !errors.As(err, &nerr) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
	})

	t.Run("non-integer id is a usage error", func(t *testing.T) {
		tr, _ := newTestTracker(t)
		var out bytes.Buffer

		err := doneCommand(tr, []string{"seven"}, &out)
		if ExitCode(err) != 2 {
			t.Errorf("exit code: got %d, want 2 (err %v)", ExitCode(err), err)
		}
	})
}

func TestRemoveCommand(t *testing.T) {
	tr, _ := newTestTracker(t)
	if _, err := tr.Add("Buy milk", "2024-05-01"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var out bytes.Buffer
	if err := removeCommand(tr, []string{"1"}, &out); err != nil {
		t.Fatalf("removeCommand failed: %v", err)
	}
	if got := out.String(); got != "Removed task 1: Buy milk\n" {
		t.Errorf("output: got %q", got)
	}
}

func TestDoctorCommand(t *testing.T) {
	t.Run("healthy file passes", func(t *testing.T) {
		tr, st := newTestTracker(t)
		if _, err := tr.Add("Buy milk", "2024-05-01"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		cfg := &config.Config{TasksFile: st.Path}

		var out bytes.Buffer
		if err := doctorCommand(cfg, st, nil, &out); err != nil {
			t.Fatalf("doctorCommand failed: %v", err)
		}
		if !strings.Contains(out.String(), "All checks passed.") {
			t.Errorf("output: got %q", out.String())
		}
	})

	t.Run("missing file is not a failure", func(t *testing.T) {
		_, st := newTestTracker(t)
		cfg := &config.Config{TasksFile: st.Path}

		var out bytes.Buffer
		if err := doctorCommand(cfg, st, nil, &out); err != nil {
			t.Fatalf("doctorCommand failed: %v", err)
		}
		if !strings.Contains(out.String(), "Not created yet") {
			t.Errorf("output: got %q", out.String())
		}
	})
}

func TestParseCommandArgs(t *testing.T) {
	t.Run("flags after positionals", func(t *testing.T) {
		fs := newFlagSetForTest()
		verbose := fs.Bool("undone", false, "")
		positional, err := parseCommandArgs(fs, []string{"3", "--undone"})
		if err != nil {
			t.Fatalf("parseCommandArgs failed: %v", err)
		}
		if len(positional) != 1 || positional[0] != "3" {
			t.Errorf("positional: got %v, want [3]", positional)
		}
		if !*verbose {
			t.Error("trailing flag should be parsed")
		}
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		fs := newFlagSetForTest()
		_, err := parseCommandArgs(fs, []string{"--nope"})
		if ExitCode(err) != 2 {
			t.Errorf("exit code: got %d, want 2 (err %v)", ExitCode(err), err)
		}
	})
}
