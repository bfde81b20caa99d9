// Package exporter writes result datasets to files.
//
// A Writer is rooted at an output directory and exports a dataset in one
// of three formats:
//
// CSV: union-of-fields header in first-sight order, full-precision floats,
// optional UTF-8 BOM for Excel compatibility.
//
// JSON: array of objects with per-row field insertion order preserved.
//
// XLSX: single "Results" sheet with the same header layout as CSV and
// native numeric cells.
package exporter
