// Package compare implements the comparative analytics transformation
// engine: a collection of deterministic, stateless operations that turn
// flat labeled-row datasets into derived comparison datasets suitable for
// charting or tabular display.
//
// # Data model
//
// Every operation consumes a Dataset (an ordered sequence of Rows, each an
// ordered field-name-to-scalar mapping) plus a small configuration, and
// returns a freshly allocated Dataset. Inputs are never mutated, so a
// caller may feed the same dataset to several operations concurrently.
//
// Two conventions hold engine-wide:
//
//  1. Numeric coercion: any value read for arithmetic passes through
//     CoerceNumber. Missing fields, nils and non-numeric strings read as
//     0, so no operation ever fails on irregular business data.
//  2. Key comparison: any value used as a join, group or sort key passes
//     through KeyString, so a numeric 2024 and the string "2024" match.
//
// # Operations
//
//   - Compare: baseline vs comparison column groups within a row
//     (difference, percent change, ratio)
//   - PeriodOverPeriod / YearOverYear: align two datasets by period key
//     and compute per-field deltas
//   - CompareToBenchmark: actual vs target with met/missed status
//   - CohortAnalysis: cohort x period matrix with retention ratios
//   - SideBySide: outer-join N datasets on a common key into wide rows
//   - VarianceAnalysis: actual vs planned with a favorability flag
//   - RollingComparison: trailing moving average and deviation from it
//   - RankComparison / RankComparisonByGroup: descending rank and
//     percentile (these reorder their output)
//   - NormalizeToIndex: rescale a series to a base value at an anchor
//   - CalculateContribution: each row's share of the column total
//
// # Errors
//
// Only invalid configuration (empty key names, a rolling window below 1,
// a negative base index) produces an error, always a *Error with code
// INVALID_CONFIG. Missing data, absent join matches, empty datasets and
// zero denominators are normal inputs: percentages and ratios with a zero
// denominator come out as exactly 0, never NaN or infinity.
package compare
