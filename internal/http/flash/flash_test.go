package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/sessions"
)

func TestStore(t *testing.T) {
	store := NewStore(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), "")

	mux := http.NewServeMux()

	mux.HandleFunc("POST /add", func(w http.ResponseWriter, r *http.Request) {
		if err := Add(w, r, model.NewSuccessNotification("Success", "Task status updated")); err != nil {
			t.Errorf("%+v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	var popped []model.Notification

	mux.HandleFunc("GET /pop", func(w http.ResponseWriter, r *http.Request) {
		notifications, err := Pop(w, r)
		if err != nil {
			t.Errorf("%+v", err)
		}
		popped = notifications
		w.WriteHeader(http.StatusNoContent)
	})

	handler := store.Middleware()(mux)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/add", nil))

	cookies := res.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected %d, got %d", e, g)
	}

	req := httptest.NewRequest(http.MethodGet, "/pop", nil)
	req.AddCookie(cookies[0])

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := 1, len(popped); e != g {
		t.Fatalf("len(popped): expected %d, got %d", e, g)
	}

	if e, g := model.NewSuccessNotification("Success", "Task status updated"), popped[0]; e != g {
		t.Errorf("popped[0]: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
	}

	// Flashes are consumed once
	req = httptest.NewRequest(http.MethodGet, "/pop", nil)
	req.AddCookie(res.Result().Cookies()[0])

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := 0, len(popped); e != g {
		t.Errorf("len(popped): expected %d, got %d", e, g)
	}
}

func TestPopWithoutStore(t *testing.T) {
	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	notifications, err := Pop(res, req)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := 0, len(notifications); e != g {
		t.Errorf("len(notifications): expected %d, got %d", e, g)
	}
}
