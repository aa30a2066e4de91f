package domain

// Polarity holds the four lexicon scores of a text.
// Neg, Neu and Pos are proportions in [0, 1]; Compound is normalized to [-1, 1].
type Polarity struct {
	Neg      float64
	Neu      float64
	Pos      float64
	Compound float64
}

// PolarityScorer scores raw text. Implementations must be safe to call repeatedly.
type PolarityScorer interface {
	PolarityScores(text string) Polarity
}

// PolarityScorerFunc adapts a plain function to PolarityScorer.
type PolarityScorerFunc func(text string) Polarity

func (f PolarityScorerFunc) PolarityScores(text string) Polarity { return f(text) }
