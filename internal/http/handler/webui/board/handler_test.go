package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bornholm/maven/internal/adapter/memory"
	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/core/model"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/http/flash"
	"github.com/gorilla/sessions"
)

func newTestHandler(t *testing.T) (http.Handler, *memory.TaskStore) {
	t.Helper()

	store := memory.NewTaskStore(
		model.NewTask("task-1", "Write landing copy"),
		model.NewTask("task-2", "Ship checkout", model.WithTaskStatus(model.TaskStatusInProgress)),
	)

	controller := boardService.NewController(store, notify.Contextual())

	flashes := flash.NewStore(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), "")

	return flashes.Middleware()(NewHandler(controller, store)), store
}

func postMove(handler http.Handler, taskID string, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("taskId", taskID)
	form.Set("target", target)

	req := httptest.NewRequest(http.MethodPost, "/moves", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		req.AddCookie(c)
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func TestBoardPage(t *testing.T) {
	handler, _ := newTestHandler(t)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{"To Do", "In Progress", "Completed", `id="in-progress"`, "Write landing copy", "Ship checkout"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected body to contain '%s'", expected)
		}
	}
}

func TestMove(t *testing.T) {
	handler, store := newTestHandler(t)

	res := postMove(handler, "task-1", string(model.TaskStatusCompleted))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/dashboard/", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	task, err := store.GetTaskByID(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := model.TaskStatusCompleted, task.Status(); e != g {
		t.Errorf("task.Status(): expected '%s', got '%s'", e, g)
	}

	cookies := res.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected %d, got %d", e, g)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if !strings.Contains(res.Body.String(), boardService.SuccessMessage) {
		t.Errorf("expected board page to display the success notification")
	}
}

func TestMoveIgnored(t *testing.T) {
	handler, store := newTestHandler(t)

	type testCase struct {
		Name   string
		TaskID string
		Target string
	}

	testCases := []testCase{
		{Name: "missing target", TaskID: "task-1", Target: ""},
		{Name: "same bucket", TaskID: "task-2", Target: string(model.TaskStatusInProgress)},
		{Name: "unknown task", TaskID: "unknown", Target: string(model.TaskStatusCompleted)},
		{Name: "unknown target", TaskID: "task-1", Target: "archived"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			res := postMove(handler, tc.TaskID, tc.Target)

			if e, g := http.StatusSeeOther, res.Code; e != g {
				t.Fatalf("res.Code: expected %d, got %d", e, g)
			}

			// No notification means no flash cookie
			if e, g := 0, len(res.Result().Cookies()); e != g {
				t.Errorf("len(cookies): expected %d, got %d", e, g)
			}
		})
	}

	task, err := store.GetTaskByID(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := model.TaskStatusPending, task.Status(); e != g {
		t.Errorf("task.Status(): expected '%s', got '%s'", e, g)
	}
}
