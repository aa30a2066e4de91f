package analysis

import (
	"sort"

	"github.com/pscheid92/tweetpulse/internal/domain"
)

// SortKey selects the polarity dimension TopN ranks by.
type SortKey int

const (
	ByNegative SortKey = iota
	ByPositive
)

func (k SortKey) value(r domain.Record) float64 {
	if k == ByPositive {
		return r.Polarity.Pos
	}
	return r.Polarity.Neg
}

// TopN returns the n records with the highest key score, highest first.
// Ties keep their input order. The input slice is not reordered.
func TopN(records []domain.Record, key SortKey, n int) []domain.Record {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key.value(sorted[i]) > key.value(sorted[j])
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Summarize computes everything the report needs from labelled records.
func Summarize(records []domain.Record, topN int) (*domain.Summary, error) {
	monthly, err := Monthly(records)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		MostNegative:      TopN(records, ByNegative, topN),
		MostPositive:      TopN(records, ByPositive, topN),
		LabelLikesCorr:    LabelLikesCorrelation(records),
		LabelRetweetsCorr: LabelRetweetsCorrelation(records),
		Correlations:      CorrelationMatrix(records, HeatmapColumns),
		Monthly:           monthly,
	}, nil
}
