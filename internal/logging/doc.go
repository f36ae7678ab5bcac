// Package logging constructs the slog loggers used across the CLI.
//
// Two handlers are provided: a console handler emitting aligned
// "TIME LEVEL component: message k=v" lines for interactive runs, and a JSON
// handler for pipes and log files. When no format is configured the choice is
// made by whether stderr is a terminal.
package logging
