// Package sentiment implements the filtering and scoring stages of the pipeline.
//
// Filter drops replies/mentions and posts with links. Scorer runs every remaining record through
// an injected domain.PolarityScorer, one row at a time and in order.
package sentiment
