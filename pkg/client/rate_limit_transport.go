package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many Requests,
// waiting as instructed by the Retry-After or X-RateLimit-Reset headers.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	var (
		res *http.Response
		err error
	)

	for attempt := 0; attempt <= t.MaxRetries; attempt++ {
		res, err = transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt == t.MaxRetries {
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		waitTime := t.getWaitTime(res)

		slog.WarnContext(req.Context(), "rate limited", slog.Duration("wait_time", waitTime), slog.Int("attempt", attempt+1), slog.Int("max_retries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, errors.WithStack(req.Context().Err())
		case <-time.After(waitTime):
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}

			req.Body = body
		} else if req.Body != nil && req.Body != http.NoBody {
			return nil, errors.New("cannot retry request with one-time reader body")
		}
	}

	return res, nil
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait := time.Duration(seconds) * time.Second
			jitter := time.Duration(rand.Float64() * float64(wait) / 2)
			return wait + jitter
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			return time.Until(date)
		}
	}

	if reset := res.Header.Get("X-RateLimit-Reset"); reset != "" {
		if resetTime, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if wait := time.Until(time.Unix(resetTime, 0)); wait > 0 {
				return wait
			}
		}
	}

	return t.DefaultWait
}

var _ http.RoundTripper = &RateLimitTransport{}
