// Package analysis derives labels, correlations and monthly aggregates from scored records.
//
// Everything here is pure computation over in-memory slices. Pearson coefficients and means
// come from gonum/stat. Undefined correlations are NaN.
package analysis
