// Package client is a Go client for the Maven task API.
package client

import (
	"net/http"
	"net/url"
)

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	header     http.Header
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		header:     opts.Header,
	}
}
