package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/task-classifier/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// errNoBudget marks a retry that was skipped because the caller's deadline
// would pass before the next attempt could start.
var errNoBudget = errors.New("retry skipped: deadline too close")

// doWithRetry sends req up to maxAttempts times. Network errors and
// retryable statuses (429, 5xx) are retried after an exponential, jittered
// backoff, or after the server's Retry-After when that is shorter than
// maxInterval. A retry that cannot start before ctx's deadline is not
// attempted: the model call budget is short and the caller falls back to
// heuristics sooner.
//
// The final response is written to resp rather than returned so that the
// bodyclose linter does not misfire; the caller closes its body. When the
// last attempt produced a retryable status, both *resp and the error are set.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		resetRequestBody(req, body)

		r, err := c.http.Do(req)
		switch {
		case err != nil && !isRetryable(err):
			return err
		case err == nil && !isRetryableStatus(r.StatusCode):
			*resp = r
			return nil
		case err == nil:
			err = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.peer)
		}

		delay := c.retryDelay(attempt, r)
		if attempt >= c.retryCfg.maxAttempts || !fitsDeadline(ctx, delay) {
			if r != nil {
				*resp = r
			}
			if attempt < c.retryCfg.maxAttempts {
				return fmt.Errorf("%w: %w", errNoBudget, err)
			}
			return err
		}
		if r != nil {
			drainResponseBody(r)
		}

		if err := c.waitForRetry(ctx, req, attempt, delay, err); err != nil {
			return err
		}
	}
}

// retryDelay returns how long to wait before attempt+1. A Retry-After header
// in seconds wins over the computed backoff when it is within maxInterval.
func (c *Client) retryDelay(attempt int, r *http.Response) time.Duration {
	if r != nil {
		if secs, err := strconv.Atoi(r.Header.Get("Retry-After")); err == nil && secs >= 0 {
			if d := time.Duration(secs) * time.Second; d <= c.retryCfg.maxInterval {
				return d
			}
		}
	}
	return backoff(attempt, c.retryCfg)
}

// fitsDeadline reports whether waiting delay still leaves ctx alive.
func fitsDeadline(ctx context.Context, delay time.Duration) bool {
	deadline, ok := ctx.Deadline()
	return !ok || time.Until(deadline) > delay
}

// bufferRequestBody reads and closes the request body so that each attempt
// can replay it. Returns nil for a nil body.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return b, nil
}

func resetRequestBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// waitForRetry logs the retry at WARN and sleeps for delay or until ctx ends.
func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns initialInterval * multiplier^(attempt-1), capped at
// maxInterval, with ±25% jitter. attempt 1 is the first retry.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(cfg.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter is not security sensitive

	return time.Duration(math.Max(delay, 0))
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadline errors are final; everything else, network
// errors included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx responses.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
