package profile

import (
	"net/http"
	"path"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/core/service"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

// AvatarHandler serves the stored avatars.
type AvatarHandler struct {
	mux            *http.ServeMux
	profileManager *service.ProfileManager
}

// ServeHTTP implements http.Handler.
func (h *AvatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *AvatarHandler) getAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	avatarPath := r.PathValue("path")

	file, err := h.profileManager.OpenAvatar(ctx, avatarPath)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	defer file.Close()

	w.Header().Set("Cache-Control", "private, max-age=60")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	http.ServeContent(w, r, path.Base(avatarPath), file.ModTime(), file)
}

func NewAvatarHandler(profileManager *service.ProfileManager) *AvatarHandler {
	h := &AvatarHandler{
		mux:            http.NewServeMux(),
		profileManager: profileManager,
	}

	h.mux.HandleFunc("GET /{path...}", h.getAvatar)

	return h
}

var _ http.Handler = &AvatarHandler{}
