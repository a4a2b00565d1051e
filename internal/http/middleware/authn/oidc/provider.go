package oidc

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, common.BaseURL(r.Context(), "/auth/oidc/logout"), http.StatusTemporaryRedirect)
	} else {
		gothic.BeginAuthHandler(w, r)
	}
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logoutURL := common.BaseURL(ctx, "/auth/oidc/logout")

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(ctx, "could not complete user auth", slogx.Error(err))
		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
		return
	}

	slog.DebugContext(ctx, "authenticated user", slog.String("provider", gothUser.Provider), slog.String("subject", gothUser.UserID))

	user := &authn.User{
		Email:       gothUser.Email,
		Provider:    gothUser.Provider,
		Subject:     gothUser.UserID,
		DisplayName: getUserDisplayName(gothUser),
	}

	if user.Email == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("user email missing")))
		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
		return
	}

	if user.Provider == "" {
		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.New("user provider missing")))
		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
		return
	}

	if err := h.events.Publish(ctx, authn.SignedIn, user); err != nil {
		slog.ErrorContext(ctx, "could not complete sign in", slogx.Error(err))
		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		http.Redirect(w, r, logoutURL, http.StatusTemporaryRedirect)
		return
	}

	http.Redirect(w, r, common.BaseURL(ctx, h.redirectPath), http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.retrieveSessionUser(r)
	if err != nil && !errors.Is(err, errSessionNotFound) {
		slog.WarnContext(ctx, "could not retrieve user from session", slogx.Error(err))
	}

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user == nil {
		http.Redirect(w, r, common.BaseURL(ctx, "/"), http.StatusTemporaryRedirect)
		return
	}

	if err := h.events.Publish(ctx, authn.SignedOut, user); err != nil {
		slog.WarnContext(ctx, "sign out listener failed", slogx.Error(err))
	}

	http.Redirect(w, r, common.BaseURL(ctx, "/auth/oidc/providers/"+user.Provider+"/logout"), http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := gothic.Logout(w, r); err != nil {
		slog.WarnContext(ctx, "could not logout user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, common.BaseURL(ctx, "/"), http.StatusTemporaryRedirect)
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	rawPreferredUsername, exists := user.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			displayName = preferredUsername
		}
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" && (user.FirstName != "" || user.LastName != "") {
		displayName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
