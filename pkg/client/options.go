package client

import (
	"net/http"
	"net/url"
	"time"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	// Header is added to every request, e.g. to carry the session cookie
	Header http.Header
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithHeader(key, value string) OptionFunc {
	return func(opts *Options) {
		opts.Header.Add(key, value)
	}
}

// WithSessionCookie authenticates requests with the given session cookie,
// as issued by the server after an OIDC login.
func WithSessionCookie(cookie *http.Cookie) OptionFunc {
	return func(opts *Options) {
		opts.Header.Add("Cookie", cookie.String())
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3002",
		},
		HTTPClient: &http.Client{
			Timeout: time.Minute,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  5,
				DefaultWait: time.Second,
			},
		},
		Header: http.Header{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
