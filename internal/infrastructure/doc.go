// Package infrastructure provides the logging backbone: a JSON slog
// logger configured from application config, plus run-ID generation and
// context plumbing so every log line inside a pipeline run carries the
// same run_id.
package infrastructure
