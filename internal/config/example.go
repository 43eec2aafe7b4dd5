package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Daytrack configuration file
# Values can be overridden by CLI flags

# Tasks file (defaults to tasks.json next to the daytrack executable;
# supports ~ expansion)
# tasks_file = "~/tasks.json"

# Log level: debug, info, warn, or error
log_level = "info"

# Include timestamps in log output
log_timestamps = false
`
}
