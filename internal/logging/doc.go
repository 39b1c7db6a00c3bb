// Package logging builds the slog loggers used across the pack builder and
// provides shared attribute helpers so components emit uniform structured
// fields.
//
// Console output is the default when stderr is a terminal; JSON is used
// otherwise or when forced through configuration. Tests use NewNop to silence
// output entirely.
package logging
