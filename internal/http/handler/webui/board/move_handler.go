package board

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/core/model"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

// handleMove receives the drop of a task card. It waits for the resulting
// mutation to settle and carries its notification to the board page.
func (h *Handler) handleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewError(err, "The submitted move is invalid.", http.StatusBadRequest))
		return
	}

	gesture := boardService.Gesture{
		SourceID: model.TaskID(r.PostFormValue("taskId")),
		TargetID: r.PostFormValue("target"),
	}

	snapshot, err := h.snapshot(ctx)
	if err != nil {
		common.HandleError(w, r, errors.Wrap(err, "could not load board snapshot"))
		return
	}

	collector := notify.NewCollector()
	ctx = notify.WithCollector(ctx, collector)

	if mutation := h.controller.HandleGesture(ctx, snapshot, gesture); mutation != nil {
		if err := mutation.Wait(r.Context()); err != nil && r.Context().Err() != nil {
			slog.DebugContext(ctx, "client left before the move settled")
			return
		}
	}

	common.RedirectWithFlash(w, r, "/dashboard/", collector.Notifications()...)
}
