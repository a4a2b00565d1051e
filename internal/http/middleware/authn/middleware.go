package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (*User, error)
}

func Middleware(onUnauthorized func(w http.ResponseWriter, r *http.Request), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
					common.HandleError(w, r, err)
					return
				}

				if user == nil {
					continue
				}

				ctx := r.Context()
				ctx = setContextUser(ctx, user)

				r = r.WithContext(ctx)

				next.ServeHTTP(w, r)
				return
			}

			onUnauthorized(w, r)
		}

		return fn
	}
}

// Optional lets anonymous requests through, with the authenticated user in
// context when there is one.
func Optional(authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return Middleware(next.ServeHTTP, authenticators...)(next)
	}
}

// RedirectTo returns an unauthorized handler redirecting to the given path,
// relative to the base URL.
func RedirectTo(path string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, common.BaseURL(r.Context(), path), http.StatusSeeOther)
	}
}

// Unauthorized answers anonymous API requests.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
