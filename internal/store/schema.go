package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/daytrack/daytrack-go/internal/task"
)

// bundledTasksSchema describes the on-disk tasks file format.
const bundledTasksSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "Daytrack tasks",
  "type": "array",
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["task_id", "description", "scheduled_for"],
    "properties": {
      "task_id": { "type": "integer", "minimum": 1 },
      "description": { "type": "string", "minLength": 1 },
      "scheduled_for": { "type": "string", "format": "date" },
      "completed": { "type": "boolean" }
    }
  }
}`

// SchemaError is a single schema violation with its location in the file.
type SchemaError struct {
	Path string // dot-notation path into the document
	Err  error
}

func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// FileReport holds the result of validating the tasks file against the
// bundled JSON Schema.
type FileReport struct {
	Valid  bool
	Errors []error
}

// ValidateFile checks the raw tasks file against the bundled schema. It
// reads the file directly rather than going through Load so that records
// the decoder would reject are still reported with their locations.
func (s *Store) ValidateFile() (*FileReport, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &FileReport{
			Valid:  false,
			Errors: []error{&task.CorruptFileError{Path: s.Path, Err: err}},
		}, nil
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(bundledTasksSchema)); err != nil {
		return nil, fmt.Errorf("load bundled schema: %w", err)
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile bundled schema: %w", err)
	}

	report := &FileReport{Valid: true}
	if err := schema.Validate(doc); err != nil {
		report.Valid = false
		appendSchemaErrors(report, err)
	}
	return report, nil
}

func appendSchemaErrors(report *FileReport, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		report.Errors = append(report.Errors, err)
		return
	}
	collectSchemaErrors(report, ve)
}

func collectSchemaErrors(report *FileReport, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		report.Errors = append(report.Errors, &SchemaError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(report, cause)
	}
}

// jsonPointerToPath converts a JSON Pointer (RFC 6901) into a dot-notation
// path, e.g. "/0/scheduled_for" becomes "[0].scheduled_for".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
