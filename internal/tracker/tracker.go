// Package tracker implements the task operations. Every operation loads
// the full collection from the store, mutates it in memory, and writes it
// back in full; no state survives between invocations.
package tracker

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/daytrack/daytrack-go/internal/store"
	"github.com/daytrack/daytrack-go/internal/task"
)

// Tracker runs task operations against an explicit store handle.
type Tracker struct {
	store  *store.Store
	logger *log.Logger
}

// New returns a tracker over st. A nil logger discards debug output.
func New(st *store.Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tracker{store: st, logger: logger}
}

// Path returns the location of the backing tasks file.
func (tr *Tracker) Path() string {
	return tr.store.Path
}

// NextID allocates the next task id: max existing id + 1, or 1 when the
// collection is empty. There is no persistent counter, so removing the
// task holding the maximum id lets that id be handed out again. That is a
// deliberate, deterministic property of the format, not something to fix.
func NextID(tasks []task.Task) int {
	max := 0
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Add appends a new pending task scheduled for the given date and
// persists the grown collection.
func (tr *Tracker) Add(description, scheduledFor string) (task.Task, error) {
	tasks, err := tr.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	t := task.Task{
		ID:           NextID(tasks),
		Description:  description,
		ScheduledFor: scheduledFor,
	}
	tasks = append(tasks, t)

	if err := tr.store.Save(tasks); err != nil {
		return task.Task{}, err
	}
	tr.logger.Debug("added task", "id", t.ID, "scheduled_for", t.ScheduledFor)
	return t, nil
}

// List returns tasks matching the filters, sorted ascending by
// (scheduled_for, task_id). showAll bypasses the date filter only; the
// completion filter still applies when completed is non-nil.
func (tr *Tracker) List(date string, showAll bool, completed *bool) ([]task.Task, error) {
	tasks, err := tr.store.Load()
	if err != nil {
		return nil, err
	}
	tr.logger.Debug("loaded tasks", "count", len(tasks))

	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !showAll && !t.MatchesDate(date) {
			continue
		}
		if !t.MatchesState(completed) {
			continue
		}
		matched = append(matched, t)
	}
	task.Sort(matched)
	return matched, nil
}

// SetCompletion marks the task with the given id completed or pending and
// persists the change. The first matching task wins; ids are expected to
// be unique.
func (tr *Tracker) SetCompletion(id int, completed bool) (task.Task, error) {
	tasks, err := tr.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = completed
		if err := tr.store.Save(tasks); err != nil {
			return task.Task{}, err
		}
		tr.logger.Debug("updated task state", "id", id, "completed", completed)
		return tasks[i], nil
	}
	return task.Task{}, &task.NotFoundError{ID: id}
}

// Remove deletes the task with the given id and persists the reduced
// collection, returning the removed task.
func (tr *Tracker) Remove(id int) (task.Task, error) {
	tasks, err := tr.store.Load()
	if err != nil {
		return task.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		removed := tasks[i]
		tasks = append(tasks[:i], tasks[i+1:]...)
		if err := tr.store.Save(tasks); err != nil {
			return task.Task{}, err
		}
		tr.logger.Debug("removed task", "id", id)
		return removed, nil
	}
	return task.Task{}, &task.NotFoundError{ID: id}
}
