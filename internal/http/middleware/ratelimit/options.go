package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	// TrustHeaders enables the use of the X-Forwarded-For and X-Real-Ip
	// headers to identify the client.
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
	OnLimited    http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     time.Second,
		MaxBurst:     10,
		CacheSize:    1024,
		CacheTTL:     10 * time.Minute,
		OnLimited:    http.HandlerFunc(tooManyRequests),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithInterval(interval time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

func WithMaxBurst(maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

// WithOnLimited sets the handler answering rejected requests. The
// Retry-After header is already set when it is called.
func WithOnLimited(h http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = h
	}
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
