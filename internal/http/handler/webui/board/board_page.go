package board

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/http/handler/webui/board/component"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

func (h *Handler) getBoardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.snapshot(ctx)
	if err != nil {
		common.HandleError(w, r, errors.Wrap(err, "could not load board snapshot"))
		return
	}

	view := h.controller.Render(snapshot)

	vmodel := component.BoardPageVModel{
		Loading: view.Loading,
		Columns: view.Buckets.Columns(),
	}

	if err := common.FillViewModel(w, r, &vmodel.Page); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Title = "Dashboard"

	templ.Handler(component.BoardPage(vmodel)).ServeHTTP(w, r)
}
