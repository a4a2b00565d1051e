package board

import (
	"context"
	"net/http"

	"github.com/bornholm/maven/internal/core/port"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/pkg/errors"
)

type Handler struct {
	mux        *http.ServeMux
	controller *boardService.Controller
	tasks      port.TaskStore
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// snapshot loads the tasks the board is rendered from. The task store is
// expected to be the cached one, replaced on each refresh event.
func (h *Handler) snapshot(ctx context.Context) (boardService.Snapshot, error) {
	tasks, err := h.tasks.ListTasks(ctx)
	if err != nil {
		return boardService.Snapshot{}, errors.WithStack(err)
	}

	return boardService.Snapshot{Tasks: tasks}, nil
}

func NewHandler(controller *boardService.Controller, tasks port.TaskStore) *Handler {
	h := &Handler{
		mux:        http.NewServeMux(),
		controller: controller,
		tasks:      tasks,
	}

	h.mux.HandleFunc("GET /{$}", h.getBoardPage)
	h.mux.HandleFunc("POST /moves", h.handleMove)

	return h
}

var _ http.Handler = &Handler{}
