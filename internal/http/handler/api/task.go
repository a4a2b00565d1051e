package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/pkg/errors"
)

type Task struct {
	ID          model.TaskID     `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status"`
	AssigneeID  model.UserID     `json:"assigneeId,omitempty"`
	Assignee    string           `json:"assignee,omitempty"`
}

func toTask(t model.Task) Task {
	return Task{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		AssigneeID:  t.AssigneeID(),
		Assignee:    t.Assignee(),
	}
}

func toTasks(tasks []model.Task) []Task {
	results := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		results = append(results, toTask(t))
	}

	return results
}

type ListTasksResponse struct {
	Tasks   []Task                      `json:"tasks"`
	Buckets map[model.TaskStatus][]Task `json:"buckets"`
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.snapshot(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load board snapshot", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := h.controller.Render(snapshot)

	res := ListTasksResponse{
		Tasks:   toTasks(snapshot.Tasks),
		Buckets: make(map[model.TaskStatus][]Task, len(model.TaskStatuses)),
	}

	for _, status := range model.TaskStatuses {
		res.Buckets[status] = toTasks(view.Buckets.Get(status))
	}

	writeJSON(w, r, http.StatusOK, res)
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type TaskResponse struct {
	Task Task `json:"task"`
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "could not decode request", slogx.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		http.Error(w, "task title is required", http.StatusBadRequest)
		return
	}

	task := model.NewTask(model.NewTaskID(), title, model.WithTaskDescription(strings.TrimSpace(req.Description)))

	if err := h.tasks.CreateTask(ctx, task); err != nil {
		slog.ErrorContext(ctx, "could not create task", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "task created", slog.String("taskID", string(task.ID())))

	writeJSON(w, r, http.StatusCreated, TaskResponse{Task: toTask(task)})
}

func (h *Handler) showTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	task, err := h.tasks.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not retrieve task", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, TaskResponse{Task: toTask(task)})
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	if err := h.tasks.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not delete task", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type MoveTaskRequest struct {
	Target string `json:"target"`
}

type MoveTaskResponse struct {
	Dispatched   bool                `json:"dispatched"`
	Notification *model.Notification `json:"notification,omitempty"`
}

// moveTask is the JSON counterpart of a drag and drop gesture. Store
// failures are reported through the notification, not the status code.
func (h *Handler) moveTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MoveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "could not decode request", slogx.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	gesture := boardService.Gesture{
		SourceID: model.TaskID(r.PathValue("taskID")),
		TargetID: req.Target,
	}

	snapshot, err := h.snapshot(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load board snapshot", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	collector := notify.NewCollector()

	mutation := h.controller.HandleGesture(notify.WithCollector(ctx, collector), snapshot, gesture)
	if mutation == nil {
		writeJSON(w, r, http.StatusOK, MoveTaskResponse{Dispatched: false})
		return
	}

	if err := mutation.Wait(ctx); err != nil && ctx.Err() != nil {
		slog.DebugContext(ctx, "client left before the move settled")
		return
	}

	res := MoveTaskResponse{Dispatched: true}

	if notifications := collector.Notifications(); len(notifications) > 0 {
		res.Notification = &notifications[len(notifications)-1]
	}

	writeJSON(w, r, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}
