// Package app provides the application service layer.
//
// Pipeline orchestrates one analysis run: load, filter, score, aggregate, report. It owns stage
// timing, stage-scoped logging and run metrics. Depends on domain interfaces for I/O and on the
// pure sentiment and analysis packages for computation.
package app
