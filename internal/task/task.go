// Package task defines the tracked task record, its predicates, and the
// decode step that turns raw JSON records into validated tasks.
package task

import (
	"encoding/json"
	"sort"
)

// Task represents a single tracked item.
type Task struct {
	ID           int    `json:"task_id"`
	Description  string `json:"description"`
	ScheduledFor string `json:"scheduled_for"`
	Completed    bool   `json:"completed"`
}

// MatchesDate reports whether the task is scheduled for date.
// An empty date is a wildcard and matches every task.
func (t *Task) MatchesDate(date string) bool {
	if date == "" {
		return true
	}
	return t.ScheduledFor == date
}

// MatchesState reports whether the task's completion state matches.
// A nil filter matches every task.
func (t *Task) MatchesState(completed *bool) bool {
	if completed == nil {
		return true
	}
	return t.Completed == *completed
}

// Sort orders tasks ascending by (scheduled_for, task_id). The sort is
// stable, though the key is unique as long as ids are.
func Sort(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].ScheduledFor != tasks[j].ScheduledFor {
			return tasks[i].ScheduledFor < tasks[j].ScheduledFor
		}
		return tasks[i].ID < tasks[j].ID
	})
}

// Decode converts a raw JSON record into a Task. task_id, description, and
// scheduled_for are required; completed defaults to false when absent.
// index is the record's position in the file, used in error messages.
func Decode(raw map[string]any, index int) (Task, error) {
	id, err := intField(raw, "task_id", index)
	if err != nil {
		return Task{}, err
	}
	description, err := stringField(raw, "description", index)
	if err != nil {
		return Task{}, err
	}
	scheduledFor, err := stringField(raw, "scheduled_for", index)
	if err != nil {
		return Task{}, err
	}

	completed := false
	if v, ok := raw["completed"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Task{}, &MalformedTaskError{Index: index, Field: "completed", Reason: "expected a boolean"}
		}
		completed = b
	}

	return Task{
		ID:           id,
		Description:  description,
		ScheduledFor: scheduledFor,
		Completed:    completed,
	}, nil
}

func intField(raw map[string]any, field string, index int) (int, error) {
	v, ok := raw[field]
	if !ok {
		return 0, &MalformedTaskError{Index: index, Field: field, Reason: "missing required field"}
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, &MalformedTaskError{Index: index, Field: field, Reason: "expected an integer"}
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &MalformedTaskError{Index: index, Field: field, Reason: "expected an integer"}
		}
		return int(i), nil
	default:
		return 0, &MalformedTaskError{Index: index, Field: field, Reason: "expected an integer"}
	}
}

func stringField(raw map[string]any, field string, index int) (string, error) {
	v, ok := raw[field]
	if !ok {
		return "", &MalformedTaskError{Index: index, Field: field, Reason: "missing required field"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &MalformedTaskError{Index: index, Field: field, Reason: "expected a string"}
	}
	return s, nil
}
