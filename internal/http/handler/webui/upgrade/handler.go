package upgrade

import (
	"net/http"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/handler/webui/upgrade/component"
	"github.com/pkg/errors"
)

type Handler struct {
	mux            *http.ServeMux
	publishableKey string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) getUpgradePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	vmodel := component.UpgradePageVModel{
		UserID:         string(user.ID()),
		PublishableKey: h.publishableKey,
	}

	if err := common.FillViewModel(w, r, &vmodel.Page); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Title = "Upgrade"

	templ.Handler(component.UpgradePage(vmodel)).ServeHTTP(w, r)
}

func NewHandler(publishableKey string) *Handler {
	h := &Handler{
		mux:            http.NewServeMux(),
		publishableKey: publishableKey,
	}

	h.mux.HandleFunc("GET /{$}", h.getUpgradePage)

	return h
}

var _ http.Handler = &Handler{}
