package profile

import (
	"net/http"

	"github.com/bornholm/maven/internal/core/service"
)

type Handler struct {
	mux            *http.ServeMux
	profileManager *service.ProfileManager
	maxAvatarSize  int64
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(profileManager *service.ProfileManager, maxAvatarSize int64) *Handler {
	h := &Handler{
		mux:            http.NewServeMux(),
		profileManager: profileManager,
		maxAvatarSize:  maxAvatarSize,
	}

	h.mux.HandleFunc("GET /{$}", h.getProfilePage)
	h.mux.HandleFunc("POST /{$}", h.handleProfileForm)

	return h
}

var _ http.Handler = &Handler{}
