package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/maven/internal/metrics"
	"github.com/pkg/errors"
)

func TestHandler(t *testing.T) {
	metrics.TaskGestures.WithLabelValues(metrics.ResultIgnored).Inc()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	NewHandler().ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(string(body), "maven_task_gestures") {
		t.Errorf("expected body to expose the task gestures counter")
	}
}
