// Package loader reads flat tabular files into engine datasets. CSV and
// XLSX sources share the same conversion rules: the first record is the
// header, numeric cells are typed as float64, and everything else stays
// textual for the engine's coercion rules to handle.
package loader
