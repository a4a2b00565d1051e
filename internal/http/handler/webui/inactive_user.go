package webui

import (
	"net/http"

	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

var errInactiveUser = errors.New("user is inactive")

func (h *Handler) getInactiveUserPage(w http.ResponseWriter, r *http.Request) {
	err := common.NewError(errInactiveUser, "Your account is inactive. Please contact an administrator.", http.StatusForbidden).
		WithLinks(component.LinkItem{URL: "/auth/oidc/logout", Label: "Sign out"})

	common.HandleError(w, r, err)
}
