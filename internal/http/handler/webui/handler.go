package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/service"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/http/handler/webui/board"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/handler/webui/landing"
	"github.com/bornholm/maven/internal/http/handler/webui/profile"
	"github.com/bornholm/maven/internal/http/handler/webui/upgrade"
	"github.com/bornholm/maven/internal/http/middleware/authz"
)

type Middleware func(http.Handler) http.Handler

type Options struct {
	// Authenticate must reject anonymous requests and attach the
	// application user to the request context.
	Authenticate Middleware
	// Identify attaches the authenticated user to the request context,
	// when there is one, without rejecting anonymous requests.
	Identify       Middleware
	MaxAvatarSize  int64
	PublishableKey string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Authenticate:  passthrough,
		Identify:      passthrough,
		MaxAvatarSize: service.DefaultMaxAvatarSize,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithAuthenticate(middleware Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Authenticate = middleware
	}
}

func WithIdentify(middleware Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Identify = middleware
	}
}

func WithMaxAvatarSize(size int64) OptionFunc {
	return func(opts *Options) {
		opts.MaxAvatarSize = size
	}
}

func WithPublishableKey(key string) OptionFunc {
	return func(opts *Options) {
		opts.PublishableKey = key
	}
}

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(controller *boardService.Controller, tasks port.TaskStore, profileManager *service.ProfileManager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux: http.NewServeMux(),
	}

	isActive := authz.Middleware(http.HandlerFunc(h.getInactiveUserPage), authz.Active())

	protect := func(handler http.Handler) http.Handler {
		return opts.Authenticate(isActive(handler))
	}

	mount(h.mux, "/", opts.Identify(landing.NewHandler()))
	mount(h.mux, "/dashboard/", protect(board.NewHandler(controller, tasks)))
	mount(h.mux, "/profile/", protect(profile.NewHandler(profileManager, opts.MaxAvatarSize)))
	mount(h.mux, "/upgrade/", protect(upgrade.NewHandler(opts.PublishableKey)))
	mount(h.mux, "/avatars/", profile.NewAvatarHandler(profileManager))
	mount(h.mux, "/assets/", common.NewHandler())

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func passthrough(next http.Handler) http.Handler {
	return next
}

var _ http.Handler = &Handler{}
