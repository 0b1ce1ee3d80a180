// Package fetcher retrieves menu pages over HTTP.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/mensabot/mensa-bot/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	userAgent   = "mensa-bot/1.0 (+https://github.com/mensabot/mensa-bot)"
	maxPageSize = 4 << 20
)

// TransportError reports a page that could not be retrieved. StatusCode is
// zero when no response arrived.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt can succeed. Client errors other
// than 408 and 429 are final.
func (e *TransportError) Retryable() bool {
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= 500
	}
}

// IsTransportError checks if an error is a TransportError.
func IsTransportError(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// Fetcher fetches pages with retries. Requests are spaced by a shared limiter.
type Fetcher struct {
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

type Option func(*Fetcher)

// WithRetry overrides the number of attempts and the initial backoff.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(f *Fetcher) {
		f.attempts = attempts
		f.delay = delay
		if f.maxDelay < delay {
			f.maxDelay = delay
		}
	}
}

// New creates a fetcher issuing at most one request per minInterval.
func New(client *http.Client, minInterval time.Duration, logger *slog.Logger, opts ...Option) *Fetcher {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}

	f := &Fetcher{
		client:   client,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
		attempts: 3,
		delay:    time.Second,
		maxDelay: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the body of pageURL. Failures are *TransportError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	var (
		body    string
		lastErr error
	)

	err := retry.Do(
		func() error {
			page, err := f.fetchOnce(ctx, pageURL)
			if err != nil {
				lastErr = err
				return err
			}
			body = page
			return nil
		},
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.MaxDelay(f.maxDelay),
		retry.MaxJitter(max(f.delay/2, time.Millisecond)),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			f.logger.Info("Retrying menu page fetch", "url", pageURL, "attempt", n, "error", err)
		}),
		retry.RetryIf(func(err error) bool {
			var transportErr *TransportError
			return errors.As(err, &transportErr) && transportErr.Retryable()
		}),
	)
	if err != nil {
		metrics.FetchTotal.WithLabelValues(metrics.ResultError).Inc()
		if lastErr != nil && ctx.Err() == nil {
			return "", lastErr
		}
		return "", &TransportError{URL: pageURL, Err: err}
	}

	metrics.FetchTotal.WithLabelValues(metrics.ResultOK).Inc()
	return body, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, pageURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", &TransportError{URL: pageURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", &TransportError{URL: pageURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.8")

	startTime := time.Now()
	resp, err := f.client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		f.logger.Warn("HTTP request failed", "url", pageURL, "duration_ms", duration.Milliseconds(), "error", err)
		return "", &TransportError{URL: pageURL, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.logger.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	f.logger.Debug("HTTP request completed",
		"url", pageURL,
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds())

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", &TransportError{URL: pageURL, Err: fmt.Errorf("read body: %w", err)}
	}
	return string(data), nil
}
