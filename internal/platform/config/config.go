package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	InputPath      string `env:"INPUT_PATH" default:"rawdata.csv"`
	TextColumn     string `env:"TEXT_COLUMN" default:"Tweets"`
	LikesColumn    string `env:"LIKES_COLUMN" default:"Likes"`
	RetweetsColumn string `env:"RETWEETS_COLUMN" default:"Retweets"`
	DateColumn     string `env:"DATE_COLUMN" default:"Date"`
	TopN           int    `env:"TOP_N" default:"10"`

	// LEXICON_URL defaults to the NLTK data package that nltk.download('vader_lexicon') fetches.
	LexiconDir              string        `env:"LEXICON_DIR" default:".cache/vader_lexicon"`
	LexiconURL              string        `env:"LEXICON_URL" default:"https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/sentiment/vader_lexicon.zip"`
	LexiconDownloadAttempts int           `env:"LEXICON_DOWNLOAD_ATTEMPTS" default:"1"`
	LexiconDownloadTimeout  time.Duration `env:"LEXICON_DOWNLOAD_TIMEOUT" default:"30s"`

	ChartDir        string `env:"CHART_DIR" default:"charts"`
	ChartFormat     string `env:"CHART_FORMAT" default:"png"`
	MetricsTextfile string `env:"METRICS_TEXTFILE"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := []struct{ name, value string }{
		{"INPUT_PATH", cfg.InputPath},
		{"TEXT_COLUMN", cfg.TextColumn},
		{"LIKES_COLUMN", cfg.LikesColumn},
		{"RETWEETS_COLUMN", cfg.RetweetsColumn},
		{"DATE_COLUMN", cfg.DateColumn},
		{"LEXICON_DIR", cfg.LexiconDir},
		{"LEXICON_URL", cfg.LexiconURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	if cfg.TopN < 1 {
		return errors.New("TOP_N must be at least 1")
	}
	if cfg.LexiconDownloadAttempts < 1 {
		return errors.New("LEXICON_DOWNLOAD_ATTEMPTS must be at least 1")
	}
	if cfg.LexiconDownloadTimeout <= 0 {
		return errors.New("LEXICON_DOWNLOAD_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.LexiconURL)
	if err != nil {
		return fmt.Errorf("LEXICON_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("LEXICON_URL must use http or https, got %q", u.Scheme)
	}

	switch strings.ToLower(cfg.ChartFormat) {
	case "png", "svg", "pdf":
		cfg.ChartFormat = strings.ToLower(cfg.ChartFormat)
	default:
		return fmt.Errorf("CHART_FORMAT must be one of png, svg, pdf, got %q", cfg.ChartFormat)
	}

	return nil
}
