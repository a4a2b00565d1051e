package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/maven/internal/adapter/memory"
	"github.com/bornholm/maven/internal/adapter/notify"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/service/board"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/handler/api"
	"github.com/pkg/errors"
)

func newTestServer(t *testing.T) *Client {
	store := memory.NewTaskStore(model.NewTask("t1", "Design"))
	controller := board.NewController(store, notify.Contextual())
	handler := api.NewHandler(controller, store)

	user := model.NewUser("github", "42", "jane@example.net", "jane")

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		handler.ServeHTTP(w, r.WithContext(httpCtx.SetUser(r.Context(), user)))
	})))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	baseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(
		WithBaseURL(baseURL),
		WithHeader("Authorization", "Bearer secret"),
	)
}

func TestClient(t *testing.T) {
	ctx := context.Background()
	client := newTestServer(t)

	created, err := client.CreateTask(ctx, "Build", "The board")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res, err := client.MoveTask(ctx, created.ID, model.TaskStatusCompleted)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !res.Dispatched || res.Notification == nil || res.Notification.Kind != model.NotificationSuccess {
		t.Errorf("expected a dispatched and successful move, got %+v", res)
	}

	list, err := client.ListTasks(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(list.Buckets[model.TaskStatusCompleted]); e != g {
		t.Errorf("len(list.Buckets[completed]): expected %d, got %d", e, g)
	}

	if err := client.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := client.GetTask(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %+v", err)
	}
}

func TestClientUnauthorized(t *testing.T) {
	client := newTestServer(t)
	client.header = http.Header{}

	if _, err := client.ListTasks(context.Background()); !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("expected ErrUnexpectedResponse, got %+v", err)
	}
}

func TestRateLimitTransport(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	httpClient := &http.Client{
		Transport: &RateLimitTransport{MaxRetries: 2, DefaultWait: time.Millisecond},
	}

	res, err := httpClient.Get(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer res.Body.Close()

	if e, g := http.StatusNoContent, res.StatusCode; e != g {
		t.Errorf("res.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := int32(2), calls.Load(); e != g {
		t.Errorf("calls: expected %d, got %d", e, g)
	}
}
