package oidc

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Authenticate implements [authn.Authenticator]. Sessions opened through a
// provider that is no longer configured are treated as anonymous.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	user, err := h.retrieveSessionUser(r)
	switch {
	case errors.Is(err, errSessionNotFound):
		return nil, nil
	case err != nil:
		return nil, errors.WithStack(err)
	}

	if !h.hasProvider(user.Provider) {
		slog.WarnContext(r.Context(), "ignoring session from unknown provider", slog.String("provider", user.Provider))
		return nil, nil
	}

	return user, nil
}

func (h *Handler) hasProvider(id string) bool {
	return slices.ContainsFunc(h.providers, func(p Provider) bool {
		return p.ID == id
	})
}

var _ authn.Authenticator = &Handler{}
