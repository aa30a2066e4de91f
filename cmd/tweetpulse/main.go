package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/tweetpulse/internal/app"
	"github.com/pscheid92/tweetpulse/internal/dataset"
	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
	"github.com/pscheid92/tweetpulse/internal/lexicon"
	"github.com/pscheid92/tweetpulse/internal/metrics"
	"github.com/pscheid92/tweetpulse/internal/platform/config"
	"github.com/pscheid92/tweetpulse/internal/platform/correlation"
	"github.com/pscheid92/tweetpulse/internal/platform/logging"
	"github.com/pscheid92/tweetpulse/internal/platform/version"
	"github.com/pscheid92/tweetpulse/internal/report"
	"github.com/pscheid92/tweetpulse/internal/sentiment"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func main() {
	showVersion := flag.Bool("version", false, "print build information and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [dataset.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return
	}

	cfg := setupConfig()
	if flag.NArg() > 0 {
		cfg.InputPath = flag.Arg(0)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	logging.InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = correlation.WithRunID(ctx, correlation.NewRunID())

	slog.InfoContext(ctx, "Application starting", append(version.Get().LogAttrs(), "input", cfg.InputPath)...)

	clock := clockwork.NewRealClock()
	reg := metrics.NewRegistry()
	pipelineMetrics := metrics.NewPipelineMetrics(reg)
	defer writeMetrics(ctx, cfg.MetricsTextfile, reg)

	provisioner := lexicon.NewProvisioner(lexicon.ProvisionerConfig{
		Dir:      cfg.LexiconDir,
		URL:      cfg.LexiconURL,
		Attempts: cfg.LexiconDownloadAttempts,
		Timeout:  cfg.LexiconDownloadTimeout,
		Clock:    clock,
	})
	analyzer, err := provisioner.Load(ctx)
	if err != nil {
		return fail(ctx, "Lexicon unavailable", err)
	}
	slog.InfoContext(ctx, "Lexicon loaded", "path", provisioner.Path(), "words", analyzer.Size())

	loader := dataset.NewCSVLoader(domain.Columns{
		Text:     cfg.TextColumn,
		Likes:    cfg.LikesColumn,
		Retweets: cfg.RetweetsColumn,
		Date:     cfg.DateColumn,
	})

	var charts domain.ChartRenderer
	if cfg.ChartDir != "" {
		charts = report.NewCharts(cfg.ChartDir, cfg.ChartFormat)
	}

	pipeline := app.NewPipeline(
		loader,
		sentiment.NewScorer(analyzer),
		report.NewPrinter(os.Stdout),
		charts,
		pipelineMetrics,
		clock,
		app.Options{InputPath: cfg.InputPath, TopN: cfg.TopN},
	)

	res, err := pipeline.Run(ctx)
	if err != nil {
		return fail(ctx, "Pipeline failed", err)
	}

	for _, path := range res.Charts {
		slog.InfoContext(ctx, "Chart saved", "path", path)
	}
	return 0
}

func fail(ctx context.Context, msg string, err error) int {
	se := apperrors.AsStructuredError(err)
	slog.ErrorContext(ctx, msg, append(se.LogAttrs(), "exit_code", se.ExitCode())...)
	return se.ExitCode()
}

func writeMetrics(ctx context.Context, path string, reg *prometheus.Registry) {
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path, reg); err != nil {
		slog.ErrorContext(ctx, "Failed to write metrics", "path", path, "error", err)
		return
	}
	slog.DebugContext(ctx, "Metrics written", "path", path)
}
