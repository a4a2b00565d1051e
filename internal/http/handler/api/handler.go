package api

import (
	"context"
	"net/http"

	"github.com/bornholm/maven/internal/core/port"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/http/middleware/authz"
	"github.com/pkg/errors"
)

type Handler struct {
	controller *boardService.Controller
	tasks      port.TaskStore
	mux        *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) snapshot(ctx context.Context) (boardService.Snapshot, error) {
	tasks, err := h.tasks.ListTasks(ctx)
	if err != nil {
		return boardService.Snapshot{}, errors.WithStack(err)
	}

	return boardService.Snapshot{Tasks: tasks}, nil
}

func NewHandler(controller *boardService.Controller, tasks port.TaskStore) *Handler {
	h := &Handler{
		controller: controller,
		tasks:      tasks,
		mux:        &http.ServeMux{},
	}

	assertActive := authz.Middleware(nil, authz.Active())

	h.mux.Handle("GET /tasks", assertActive(http.HandlerFunc(h.listTasks)))
	h.mux.Handle("POST /tasks", assertActive(http.HandlerFunc(h.createTask)))
	h.mux.Handle("GET /tasks/{taskID}", assertActive(http.HandlerFunc(h.showTask)))
	h.mux.Handle("DELETE /tasks/{taskID}", assertActive(http.HandlerFunc(h.deleteTask)))
	h.mux.Handle("POST /tasks/{taskID}/moves", assertActive(http.HandlerFunc(h.moveTask)))

	return h
}

var _ http.Handler = &Handler{}
