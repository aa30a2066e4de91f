// Package report turns a domain.Summary into console output and chart files.
//
// Printer writes the extreme posts and the label correlations to an io.Writer. Charts renders
// the correlation heatmap and the monthly figures with gonum/plot; the file format follows the
// configured extension (png, svg or pdf).
package report
