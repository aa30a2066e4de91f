package domain

import (
	"context"
	"time"
)

// MonthlyAggregate holds the mean statistics of all records posted in one calendar month.
type MonthlyAggregate struct {
	Month        time.Month
	Count        int
	MeanLabel    float64
	MeanLikes    float64
	MeanPositive float64
	MeanNegative float64
}

// CorrelationMatrix is a symmetric matrix of Pearson coefficients between named columns.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// At returns the coefficient between columns i and j.
func (m CorrelationMatrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// Summary is everything the reporter needs from one analysis run.
type Summary struct {
	MostNegative      []Record
	MostPositive      []Record
	LabelLikesCorr    float64
	LabelRetweetsCorr float64
	Correlations      CorrelationMatrix
	Monthly           []MonthlyAggregate
}

// ReportPrinter writes the textual part of the report.
type ReportPrinter interface {
	Print(summary *Summary) error
}

// ChartRenderer renders the figures of the report and returns the written file paths.
type ChartRenderer interface {
	Render(ctx context.Context, summary *Summary) ([]string, error)
}
