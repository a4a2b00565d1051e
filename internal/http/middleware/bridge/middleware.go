package bridge

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/middleware/authn"
)

// Middleware maps the authenticated identity to its application user. The
// profile store is optional and only used to retrieve the user theme.
func Middleware(userStore port.UserStore, profileStore port.ProfileStore) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authnUser := authn.ContextUser(ctx)
			if authnUser == nil {
				common.HandleError(w, r, common.NewHTTPError(http.StatusUnauthorized))
				return
			}

			user, err := userStore.FindOrCreateUser(ctx, authnUser.Provider, authnUser.Subject)
			if err != nil {
				common.HandleError(w, r, err)
				return
			}

			changed := user.DisplayName() != authnUser.DisplayName ||
				user.Email() != authnUser.Email

			if changed {
				updatable := model.CopyUser(user)
				updatable.SetDisplayName(authnUser.DisplayName)
				updatable.SetEmail(authnUser.Email)

				if err := userStore.SaveUser(ctx, updatable); err != nil {
					common.HandleError(w, r, err)
					return
				}

				user = updatable
			}

			ctx = httpCtx.SetUser(ctx, user)
			ctx = slogx.WithAttrs(ctx, slog.String("user", model.UserString(user)))

			if profileStore != nil {
				profile, err := profileStore.GetProfile(ctx, user.ID())
				if err != nil {
					slog.WarnContext(ctx, "could not retrieve user profile", slogx.Error(err))
				} else {
					ctx = httpCtx.SetTheme(ctx, profile.Settings.Theme)
				}
			}

			r = r.WithContext(ctx)

			h.ServeHTTP(w, r)
		}

		return fn
	}
}
