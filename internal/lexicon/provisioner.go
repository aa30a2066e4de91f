package lexicon

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/tweetpulse/internal/domain"
	apperrors "github.com/pscheid92/tweetpulse/internal/errors"
	"github.com/pscheid92/tweetpulse/internal/platform/retry"
	"golang.org/x/sync/singleflight"
)

const (
	maxDownloadBytes = 16 << 20
	initialBackoff   = 1 * time.Second
	throttledBackoff = 10 * time.Second
)

var zipMagic = []byte("PK\x03\x04")

// ProvisionerConfig configures where the lexicon comes from and where it is cached.
type ProvisionerConfig struct {
	Dir      string
	URL      string
	Attempts int
	Timeout  time.Duration
	Client   *http.Client    // nil uses a client without overall timeout; Timeout applies per attempt
	Clock    clockwork.Clock // nil uses the real clock
}

// Provisioner guarantees the lexicon file exists locally before scoring starts.
type Provisioner struct {
	dir     string
	url     string
	timeout time.Duration
	client  *http.Client
	policy  retry.Policy
	group   singleflight.Group
}

func NewProvisioner(cfg ProvisionerConfig) *Provisioner {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	return &Provisioner{
		dir:     cfg.Dir,
		url:     cfg.URL,
		timeout: cfg.Timeout,
		client:  client,
		policy: retry.Policy{
			MaxAttempts:      attempts,
			InitialBackoff:   initialBackoff,
			RateLimitBackoff: throttledBackoff,
			Clock:            cfg.Clock,
		},
	}
}

// Path is the cache location of the lexicon file.
func (p *Provisioner) Path() string {
	return filepath.Join(p.dir, FileName)
}

// Ensure returns the path of the cached lexicon, downloading it first if it is missing.
// Concurrent callers share one download.
func (p *Provisioner) Ensure(ctx context.Context) (string, error) {
	v, err, _ := p.group.Do(p.Path(), func() (any, error) {
		return p.ensure(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (p *Provisioner) ensure(ctx context.Context) (string, error) {
	target := p.Path()
	if info, err := os.Stat(target); err == nil && info.Size() > 0 {
		slog.DebugContext(ctx, "Lexicon already cached", "path", target)
		return target, nil
	}

	slog.InfoContext(ctx, "Downloading lexicon", "url", p.url, "attempts", p.policy.MaxAttempts)
	policy := p.policy
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		slog.WarnContext(ctx, "Lexicon download failed, retrying", "attempt", attempt, "backoff", backoff, "error", err)
	}
	data, err := retry.Do(ctx, policy, classifyDownload, p.download)
	if err != nil {
		return "", unavailable("failed to download lexicon", err).WithField("url", p.url)
	}

	if err := writeAtomic(p.dir, target, data); err != nil {
		return "", unavailable("failed to cache lexicon", err).WithField("path", target)
	}

	slog.InfoContext(ctx, "Lexicon cached", "path", target, "bytes", len(data))
	return target, nil
}

// Load ensures the lexicon is present and parses it.
func (p *Provisioner) Load(ctx context.Context) (*Analyzer, error) {
	path, err := p.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	analyzer, err := LoadAnalyzer(path)
	if err != nil {
		return nil, unavailable("failed to load lexicon", err).WithField("path", path)
	}
	return analyzer, nil
}

func (p *Provisioner) download(ctx context.Context) ([]byte, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, &invalidContentError{msg: fmt.Sprintf("failed to create request: %v", err)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lexicon request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon response: %w", err)
	}
	if len(body) > maxDownloadBytes {
		return nil, &invalidContentError{msg: "lexicon download exceeds size limit"}
	}

	return extract(body)
}

// extract returns the word list from a data package archive, or body itself for a plain text download.
func extract(body []byte) ([]byte, error) {
	if !bytes.HasPrefix(body, zipMagic) {
		if _, err := ParseLexicon(bytes.NewReader(body)); err != nil {
			return nil, &invalidContentError{msg: err.Error()}
		}
		return body, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, &invalidContentError{msg: fmt.Sprintf("invalid archive: %v", err)}
	}
	for _, f := range zr.File {
		if path.Base(f.Name) != FileName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &invalidContentError{msg: fmt.Sprintf("failed to open %s: %v", f.Name, err)}
		}
		data, err := io.ReadAll(io.LimitReader(rc, maxDownloadBytes))
		_ = rc.Close()
		if err != nil {
			return nil, &invalidContentError{msg: fmt.Sprintf("failed to read %s: %v", f.Name, err)}
		}
		if _, err := ParseLexicon(bytes.NewReader(data)); err != nil {
			return nil, &invalidContentError{msg: err.Error()}
		}
		return data, nil
	}
	return nil, &invalidContentError{msg: fmt.Sprintf("archive does not contain %s", FileName)}
}

func writeAtomic(dir, target string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".lexicon-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func unavailable(message string, cause error) *apperrors.Error {
	return apperrors.ExternalError(message, fmt.Errorf("%w: %w", domain.ErrLexiconUnavailable, cause))
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("lexicon download returned HTTP %d", e.code)
}

type invalidContentError struct {
	msg string
}

func (e *invalidContentError) Error() string { return e.msg }

func classifyDownload(err error) retry.Action {
	var invalid *invalidContentError
	if errors.As(err, &invalid) {
		return retry.Stop
	}

	var status *statusError
	if errors.As(err, &status) {
		switch {
		case status.code == http.StatusTooManyRequests:
			return retry.After
		case status.code >= 500:
			return retry.Retry
		default:
			return retry.Stop
		}
	}

	if errors.Is(err, context.Canceled) {
		return retry.Stop
	}
	return retry.Retry
}
