package oidc

import (
	"net/http"

	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux          *http.ServeMux
	sessionStore sessions.Store
	sessionName  string
	providers    []Provider
	events       *authn.Events
	redirectPath string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return authn.Middleware(authn.RedirectTo("/auth/oidc/login"), h)
}

func NewHandler(sessionStore sessions.Store, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	events := opts.Events
	if events == nil {
		events = authn.NewEvents()
	}

	h := &Handler{
		mux:          http.NewServeMux(),
		sessionStore: sessionStore,
		sessionName:  opts.SessionName,
		providers:    opts.Providers,
		events:       events,
		redirectPath: opts.RedirectPath,
	}

	h.mux.HandleFunc("GET /oidc/login", h.getLoginPage)
	h.mux.HandleFunc("GET /oidc/providers/{provider}", withProviderParam(h.handleProvider))
	h.mux.HandleFunc("GET /oidc/providers/{provider}/callback", withProviderParam(h.handleProviderCallback))
	h.mux.HandleFunc("GET /oidc/logout", h.handleLogout)
	h.mux.HandleFunc("GET /oidc/providers/{provider}/logout", withProviderParam(h.handleProviderLogout))

	return h
}

// withProviderParam exposes the provider path value as the query parameter
// gothic reads it from.
func withProviderParam(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		query.Set("provider", r.PathValue("provider"))
		r.URL.RawQuery = query.Encode()

		next(w, r)
	}
}

var _ http.Handler = &Handler{}
