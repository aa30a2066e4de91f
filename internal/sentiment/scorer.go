package sentiment

import (
	"context"
	"fmt"

	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
)

// Scorer attaches polarity scores to records.
type Scorer struct {
	analyzer domain.PolarityScorer
}

func NewScorer(analyzer domain.PolarityScorer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// Score scores each record independently, in order, without caching identical texts.
// The input slice is not modified. A record without text aborts the whole run.
func (s *Scorer) Score(ctx context.Context, records []domain.Record) ([]domain.Record, error) {
	scored := make([]domain.Record, len(records))

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scoring aborted: %w", err)
		}
		if !rec.HasText {
			return nil, apperrors.ScoringError("cannot score record", domain.ErrNullText).WithField("row", rec.Row)
		}

		rec.Polarity = s.analyzer.PolarityScores(rec.Text)
		scored[i] = rec
	}

	return scored, nil
}
