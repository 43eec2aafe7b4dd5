// Package ui provides an optional terminal interface for browsing and
// updating tasks in place.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daytrack/daytrack-go/internal/task"
	"github.com/daytrack/daytrack-go/internal/tracker"
)

// RunTUI starts the interactive task view.
func RunTUI(ctx context.Context, tr *tracker.Tracker, tasksFile string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	model := newTUIModel(tr, tasksFile)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type tuiModel struct {
	tracker      *tracker.Tracker
	tasksFile    string
	tasks        []task.Task
	cursor       int
	filter       *bool // nil shows every state
	loadErr      error
	showHelp     bool
	tickInterval time.Duration
}

type tickMsg time.Time

func newTUIModel(tr *tracker.Tracker, tasksFile string) *tuiModel {
	return &tuiModel{
		tracker:      tr,
		tasksFile:    tasksFile,
		tickInterval: time.Second,
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case " ", "enter":
			m.toggleCurrent()
			return m, nil
		case "x":
			m.removeCurrent()
			return m, nil
		case "a":
			m.filter = nil
			m.refresh()
			return m, nil
		case "p":
			v := false
			m.filter = &v
			m.refresh()
			return m, nil
		case "c":
			v := true
			m.filter = &v
			m.refresh()
			return m, nil
		case "r", "f5":
			m.refresh()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Filter: %s\n\n", filterLabel(m.filter)))

	if m.loadErr != nil {
		b.WriteString("Error:\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b, m.tickInterval)
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks match the given filters.\n\n")
	}
	for i, t := range m.tasks {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		status := "⬜"
		if t.Completed {
			status = "✅"
		}
		b.WriteString(fmt.Sprintf("%s[%03d] %s %s - %s\n", marker, t.ID, status, t.ScheduledFor, t.Description))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tasks file: %s\n\n", m.tasksFile))
	writeFooter(&b, m.tickInterval)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the task list through the tracker so the view always
// reflects the file on disk, even when another invocation changed it.
func (m *tuiModel) refresh() {
	tasks, err := m.tracker.List("", true, m.filter)
	if err != nil {
		m.loadErr = err
		m.tasks = nil
		m.cursor = 0
		return
	}
	m.loadErr = nil
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) toggleCurrent() {
	if m.cursor >= len(m.tasks) {
		return
	}
	t := m.tasks[m.cursor]
	if _, err := m.tracker.SetCompletion(t.ID, !t.Completed); err != nil {
		m.loadErr = err
		return
	}
	m.refresh()
}

func (m *tuiModel) removeCurrent() {
	if m.cursor >= len(m.tasks) {
		return
	}
	t := m.tasks[m.cursor]
	if _, err := m.tracker.Remove(t.ID); err != nil {
		m.loadErr = err
		return
	}
	m.refresh()
}

func filterLabel(filter *bool) string {
	switch {
	case filter == nil:
		return "all"
	case *filter:
		return "completed"
	default:
		return "pending"
	}
}

func writeTitle(b *strings.Builder) {
	title := "Daytrack TUI"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move selection\n")
	b.WriteString("  space, enter Toggle completion\n")
	b.WriteString("  x            Remove task\n")
	b.WriteString("  a            Show all tasks\n")
	b.WriteString("  p            Show pending only\n")
	b.WriteString("  c            Show completed only\n")
	b.WriteString("  r, F5        Refresh\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func writeFooter(b *strings.Builder, interval time.Duration) {
	b.WriteString(fmt.Sprintf("Press h for help | q to quit | Refreshing every %s\n", interval))
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
