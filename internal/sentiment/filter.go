package sentiment

import (
	"strings"

	"github.com/pscheid92/tweetpulse/internal/domain"
)

const (
	mentionMarker = "@"
	linkMarker    = "https://"
)

// IsMention reports whether text looks like a reply or mention.
// Any "@" counts, so e-mail addresses are dropped as well.
func IsMention(text string) bool {
	return strings.Contains(text, mentionMarker)
}

// IsLink reports whether text contains an https link. Matching is case-insensitive.
func IsLink(text string) bool {
	return strings.Contains(strings.ToLower(text), linkMarker)
}

// FilterStats counts the rows removed by each predicate.
// A row matching both is counted as a mention only.
type FilterStats struct {
	Input    int
	Mentions int
	Links    int
	Kept     int
}

// Filter returns the records that match neither predicate, preserving order.
// Records with null text never match and are kept.
func Filter(records []domain.Record) ([]domain.Record, FilterStats) {
	stats := FilterStats{Input: len(records)}
	kept := make([]domain.Record, 0, len(records))

	for _, rec := range records {
		if rec.HasText {
			if IsMention(rec.Text) {
				stats.Mentions++
				continue
			}
			if IsLink(rec.Text) {
				stats.Links++
				continue
			}
		}
		kept = append(kept, rec)
	}

	stats.Kept = len(kept)
	return kept, stats
}
