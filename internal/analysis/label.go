package analysis

import "github.com/pscheid92/tweetpulse/internal/domain"

// Label maps a compound score to the binary sentiment label. Zero counts as positive.
func Label(compound float64) int {
	if compound >= 0 {
		return 1
	}
	return 0
}

// ApplyLabels sets Label on every record in place.
func ApplyLabels(records []domain.Record) {
	for i := range records {
		records[i].Label = Label(records[i].Polarity.Compound)
	}
}
