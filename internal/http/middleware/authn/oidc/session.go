package oidc

import (
	"net/http"

	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

const sessionKeyUser = "user"

var errSessionNotFound = errors.New("session not found")

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user *authn.User) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyUser] = user

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*authn.User, error) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, ok := sess.Values[sessionKeyUser].(*authn.User)
	if !ok || user == nil {
		return nil, errors.WithStack(errSessionNotFound)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	if sess.IsNew {
		return errors.WithStack(errSessionNotFound)
	}

	delete(sess.Values, sessionKeyUser)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
