package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := Middleware(WithInterval(time.Hour), WithMaxBurst(2))(ok)

	serve := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remoteAddr

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	for i := 0; i < 2; i++ {
		if e, g := http.StatusNoContent, serve("10.0.0.1:1234").Code; e != g {
			t.Fatalf("request #%d: expected %d, got %d", i, e, g)
		}
	}

	res := serve("10.0.0.1:4321")

	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header to be set")
	}

	if e, g := http.StatusNoContent, serve("10.0.0.2:1234").Code; e != g {
		t.Errorf("other client: expected %d, got %d", e, g)
	}
}

func TestClientAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if e, g := "192.168.1.1", clientAddr(req, false); e != g {
		t.Errorf("untrusted: expected '%s', got '%s'", e, g)
	}

	if e, g := "203.0.113.7", clientAddr(req, true); e != g {
		t.Errorf("trusted: expected '%s', got '%s'", e, g)
	}
}
