package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rawdata.csv", cfg.InputPath)
	assert.Equal(t, "Tweets", cfg.TextColumn)
	assert.Equal(t, "Likes", cfg.LikesColumn)
	assert.Equal(t, "Retweets", cfg.RetweetsColumn)
	assert.Equal(t, "Date", cfg.DateColumn)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/sentiment/vader_lexicon.zip", cfg.LexiconURL)
	assert.Equal(t, 1, cfg.LexiconDownloadAttempts)
	assert.Equal(t, 30*time.Second, cfg.LexiconDownloadTimeout)
	assert.Equal(t, "charts", cfg.ChartDir)
	assert.Equal(t, "png", cfg.ChartFormat)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INPUT_PATH", "/data/cleandata.csv")
	t.Setenv("TEXT_COLUMN", "text")
	t.Setenv("TOP_N", "5")
	t.Setenv("LEXICON_DOWNLOAD_ATTEMPTS", "3")
	t.Setenv("LEXICON_DOWNLOAD_TIMEOUT", "5s")
	t.Setenv("CHART_FORMAT", "SVG")
	t.Setenv("CHART_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/cleandata.csv", cfg.InputPath)
	assert.Equal(t, "text", cfg.TextColumn)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 3, cfg.LexiconDownloadAttempts)
	assert.Equal(t, 5*time.Second, cfg.LexiconDownloadTimeout)
	assert.Equal(t, "svg", cfg.ChartFormat)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"zero TOP_N", "TOP_N", "0", "TOP_N must be at least 1"},
		{"zero attempts", "LEXICON_DOWNLOAD_ATTEMPTS", "0", "LEXICON_DOWNLOAD_ATTEMPTS must be at least 1"},
		{"negative timeout", "LEXICON_DOWNLOAD_TIMEOUT", "-1s", "LEXICON_DOWNLOAD_TIMEOUT must be positive"},
		{"ftp lexicon url", "LEXICON_URL", "ftp://example.com/lexicon.zip", "LEXICON_URL must use http or https"},
		{"unknown chart format", "CHART_FORMAT", "gif", "CHART_FORMAT must be one of png, svg, pdf"},
		{"blank text column", "TEXT_COLUMN", "  ", "TEXT_COLUMN is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
