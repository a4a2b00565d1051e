package context

import (
	"context"
	"net/url"
)

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)

// BaseURL returns a copy of the public base URL of the application.
func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok || baseURL == nil {
		return &url.URL{Path: "/"}
	}

	clone := *baseURL

	return &clone
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}

// CurrentURL returns a copy of the URL of the request being served.
func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok || currentURL == nil {
		return &url.URL{Path: "/"}
	}

	clone := *currentURL

	return &clone
}

func SetCurrentURL(ctx context.Context, currentURL *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, currentURL)
}
