package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
	"gonum.org/v1/gonum/stat"
)

var dateLayouts = []string{
	time.DateTime,
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	time.DateOnly,
}

// ParseDate parses the date cell of a record. ok is false for an empty cell.
func ParseDate(s string) (t time.Time, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range dateLayouts {
		if parsed, perr := time.Parse(layout, s); perr == nil {
			return parsed, true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognised date %q", s)
}

type monthGroup struct {
	labels, likes, pos, neg []float64
}

// Monthly groups records by calendar month, merging years, and averages each group.
// Records with an empty date are skipped. The result is ordered January to December
// and contains only months that have records.
func Monthly(records []domain.Record) ([]domain.MonthlyAggregate, error) {
	groups := make(map[time.Month]*monthGroup)

	for _, r := range records {
		t, ok, err := ParseDate(r.Date)
		if err != nil {
			return nil, apperrors.InputError("invalid date", err).WithField("row", r.Row)
		}
		if !ok {
			continue
		}

		g := groups[t.Month()]
		if g == nil {
			g = &monthGroup{}
			groups[t.Month()] = g
		}
		g.labels = append(g.labels, float64(r.Label))
		g.likes = append(g.likes, float64(r.Likes))
		g.pos = append(g.pos, r.Polarity.Pos)
		g.neg = append(g.neg, r.Polarity.Neg)
	}

	out := make([]domain.MonthlyAggregate, 0, len(groups))
	for month, g := range groups {
		out = append(out, domain.MonthlyAggregate{
			Month:        month,
			Count:        len(g.labels),
			MeanLabel:    stat.Mean(g.labels, nil),
			MeanLikes:    stat.Mean(g.likes, nil),
			MeanPositive: stat.Mean(g.pos, nil),
			MeanNegative: stat.Mean(g.neg, nil),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out, nil
}
