// Package pipeline executes YAML-declared transformation pipelines: load
// named input datasets, apply engine operations step by step against a
// dataset registry, and export the declared outputs. Every run carries a
// generated run ID through context so its log lines correlate.
package pipeline
