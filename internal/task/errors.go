package task

import "fmt"

// NotFoundError is returned when an operation references an id that is not
// present in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task with id %d", e.ID)
}

// MalformedTaskError is returned when a persisted record is missing a
// required field or carries a value of the wrong type.
type MalformedTaskError struct {
	Index  int    // record position in the tasks file
	Field  string // offending field name
	Reason string
}

func (e *MalformedTaskError) Error() string {
	return fmt.Sprintf("task record %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// CorruptFileError is returned when the tasks file exists but cannot be
// parsed as JSON at all.
type CorruptFileError struct {
	Path string
	Err  error
}

func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("cannot read tasks from %s: file is not valid JSON", e.Path)
}

// Unwrap returns the underlying parse error.
func (e *CorruptFileError) Unwrap() error {
	return e.Err
}

// InvalidDateError is returned for a date argument that is neither the
// literal "today" nor a YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD or \"today\"", e.Value)
}
