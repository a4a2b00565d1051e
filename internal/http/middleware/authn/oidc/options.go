package oidc

import (
	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/bornholm/maven/internal/http/middleware/authn/oidc/component"
)

type Provider = component.Provider

type Options struct {
	Providers   []component.Provider
	SessionName string
	Events      *authn.Events
	// RedirectPath is where users land after signing in
	RedirectPath string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:    make([]Provider, 0),
		SessionName:  "maven_auth_oidc",
		RedirectPath: "/dashboard/",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

// WithEvents sets the bus the sign-in and sign-out events are published to.
func WithEvents(events *authn.Events) OptionFunc {
	return func(opts *Options) {
		opts.Events = events
	}
}

func WithRedirectPath(path string) OptionFunc {
	return func(opts *Options) {
		opts.RedirectPath = path
	}
}
