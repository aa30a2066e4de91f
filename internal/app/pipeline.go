package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/tweetpulse/internal/analysis"
	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
	"github.com/pscheid92/tweetpulse/internal/metrics"
	"github.com/pscheid92/tweetpulse/internal/platform/correlation"
	"github.com/pscheid92/tweetpulse/internal/sentiment"
)

// Stage names used in logs and the stage_duration_seconds metric.
const (
	StageLoad      = "load"
	StageFilter    = "filter"
	StageScore     = "score"
	StageAggregate = "aggregate"
	StageReport    = "report"
)

// Options holds the per-run settings of a Pipeline.
type Options struct {
	InputPath string
	TopN      int
}

// Result is everything one run produced.
type Result struct {
	Records  []domain.Record // scored and labelled, in input order
	Loaded   int
	Filter   sentiment.FilterStats
	Summary  *domain.Summary
	Charts   []string
	Duration time.Duration
}

// Pipeline runs load, filter, score, aggregate and report once, strictly in sequence.
type Pipeline struct {
	loader  domain.DatasetLoader
	scorer  *sentiment.Scorer
	printer domain.ReportPrinter
	charts  domain.ChartRenderer
	metrics *metrics.PipelineMetrics
	clock   clockwork.Clock
	opts    Options
}

// NewPipeline wires the stages. charts may be nil to skip rendering.
func NewPipeline(loader domain.DatasetLoader, scorer *sentiment.Scorer, printer domain.ReportPrinter, charts domain.ChartRenderer, m *metrics.PipelineMetrics, clock clockwork.Clock, opts Options) *Pipeline {
	return &Pipeline{
		loader:  loader,
		scorer:  scorer,
		printer: printer,
		charts:  charts,
		metrics: m,
		clock:   clock,
		opts:    opts,
	}
}

// Run executes the pipeline. Any stage failure aborts the run; nothing is retried.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.clock.Now()
	res, err := p.run(ctx)

	result := "success"
	if err != nil {
		result = string(apperrors.AsStructuredError(err).Type)
	}
	p.metrics.Runs.WithLabelValues(result).Inc()

	if err != nil {
		return nil, err
	}
	res.Duration = p.clock.Since(start)
	slog.InfoContext(ctx, "Pipeline finished", "duration", res.Duration, "scored", len(res.Records), "charts", len(res.Charts))
	return res, nil
}

func (p *Pipeline) run(ctx context.Context) (*Result, error) {
	res := &Result{}

	var loaded []domain.Record
	err := p.stage(ctx, StageLoad, func(ctx context.Context) error {
		var err error
		loaded, err = p.loader.Load(ctx, p.opts.InputPath)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return apperrors.InputError("nothing to analyze", domain.ErrEmptyDataset).WithField("path", p.opts.InputPath)
		}
		res.Loaded = len(loaded)
		p.metrics.RowsLoaded.Add(float64(len(loaded)))
		slog.InfoContext(ctx, "Dataset loaded", "path", p.opts.InputPath, "rows", len(loaded))
		return nil
	})
	if err != nil {
		return nil, err
	}

	var kept []domain.Record
	err = p.stage(ctx, StageFilter, func(ctx context.Context) error {
		kept, res.Filter = sentiment.Filter(loaded)
		p.metrics.RowsFiltered.WithLabelValues("mention").Add(float64(res.Filter.Mentions))
		p.metrics.RowsFiltered.WithLabelValues("link").Add(float64(res.Filter.Links))
		slog.InfoContext(ctx, "Records filtered", "input", res.Filter.Input, "mentions", res.Filter.Mentions, "links", res.Filter.Links, "kept", res.Filter.Kept)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, StageScore, func(ctx context.Context) error {
		scored, err := p.scorer.Score(ctx, kept)
		if err != nil {
			return err
		}
		analysis.ApplyLabels(scored)
		res.Records = scored
		p.metrics.RowsScored.Add(float64(len(scored)))
		slog.InfoContext(ctx, "Records scored", "rows", len(scored))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, StageAggregate, func(ctx context.Context) error {
		summary, err := analysis.Summarize(res.Records, p.opts.TopN)
		if err != nil {
			return err
		}
		res.Summary = summary
		p.metrics.Correlation.WithLabelValues("likes").Set(summary.LabelLikesCorr)
		p.metrics.Correlation.WithLabelValues("retweets").Set(summary.LabelRetweetsCorr)
		slog.InfoContext(ctx, "Records aggregated",
			"label_likes_corr", summary.LabelLikesCorr,
			"label_retweets_corr", summary.LabelRetweetsCorr,
			"months", len(summary.Monthly))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = p.stage(ctx, StageReport, func(ctx context.Context) error {
		if err := p.printer.Print(res.Summary); err != nil {
			return apperrors.InternalError("failed to print report", err)
		}
		if p.charts == nil {
			return nil
		}
		paths, err := p.charts.Render(ctx, res.Summary)
		if err != nil {
			return err
		}
		res.Charts = paths
		p.metrics.ChartsRendered.Add(float64(len(paths)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// stage runs fn with the stage name attached to ctx and records its duration.
func (p *Pipeline) stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx = correlation.WithStage(ctx, name)
	start := p.clock.Now()

	err := fn(ctx)

	elapsed := p.clock.Since(start)
	p.metrics.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		slog.ErrorContext(ctx, "Stage failed", append(apperrors.AsStructuredError(err).LogAttrs(), "duration", elapsed)...)
		return err
	}
	slog.DebugContext(ctx, "Stage completed", "duration", elapsed)
	return nil
}
