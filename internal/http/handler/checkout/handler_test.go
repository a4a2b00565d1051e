package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	"github.com/pkg/errors"
)

type fakeProvider struct {
	requests []model.CheckoutRequest
	err      error
}

func (p *fakeProvider) CreateSession(ctx context.Context, req model.CheckoutRequest) (model.CheckoutSessionID, error) {
	p.requests = append(p.requests, req)

	if p.err != nil {
		return "", errors.WithStack(p.err)
	}

	return "cs_test_123", nil
}

func TestCreateCheckout(t *testing.T) {
	provider := &fakeProvider{}
	handler := NewHandler(provider)

	req := httptest.NewRequest(http.MethodPost, "/create-checkout", strings.NewReader(`{"user_id": "user-1"}`))
	req.Header.Set("Origin", "https://maven.example.net")
	req.Header.Set("Content-Type", "application/json")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "*", res.Header().Get("Access-Control-Allow-Origin"); e != g {
		t.Errorf("Access-Control-Allow-Origin: expected '%s', got '%s'", e, g)
	}

	var body CreateCheckoutResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "cs_test_123", body.SessionID; e != g {
		t.Errorf("body.SessionID: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, len(provider.requests); e != g {
		t.Fatalf("len(provider.requests): expected %d, got %d", e, g)
	}

	expected := model.CheckoutRequest{UserID: "user-1", Origin: "https://maven.example.net"}
	if g := provider.requests[0]; g != expected {
		t.Errorf("provider.requests[0]: expected %v, got %v", expected, g)
	}
}

func TestCreateCheckoutError(t *testing.T) {
	type testCase struct {
		Name          string
		Body          string
		ProviderErr   error
		ExpectedError string
	}

	testCases := []testCase{
		{
			Name:          "missing secret key",
			Body:          `{"user_id": "user-1"}`,
			ProviderErr:   errors.New("Missing Stripe secret key in environment variables"),
			ExpectedError: "Missing Stripe secret key in environment variables",
		},
		{
			Name:          "missing price id",
			Body:          `{"user_id": "user-1"}`,
			ProviderErr:   errors.New("Missing Stripe price ID in environment variables"),
			ExpectedError: "Missing Stripe price ID in environment variables",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			handler := NewHandler(&fakeProvider{err: tc.ProviderErr})

			req := httptest.NewRequest(http.MethodPost, "/create-checkout", strings.NewReader(tc.Body))
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := http.StatusBadRequest, res.Code; e != g {
				t.Fatalf("res.Code: expected %d, got %d", e, g)
			}

			var body ErrorResponse
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedError, body.Error; e != g {
				t.Errorf("body.Error: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestCreateCheckoutInvalidBody(t *testing.T) {
	provider := &fakeProvider{}
	handler := NewHandler(provider)

	req := httptest.NewRequest(http.MethodPost, "/create-checkout", strings.NewReader(`not json`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := 0, len(provider.requests); e != g {
		t.Errorf("len(provider.requests): expected %d, got %d", e, g)
	}
}

func TestCreateCheckoutPreflight(t *testing.T) {
	provider := &fakeProvider{}
	handler := NewHandler(provider)

	req := httptest.NewRequest(http.MethodOptions, "/create-checkout", nil)
	req.Header.Set("Origin", "https://maven.example.net")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code >= 300 {
		t.Fatalf("res.Code: expected 2xx, got %d", res.Code)
	}

	if e, g := "*", res.Header().Get("Access-Control-Allow-Origin"); e != g {
		t.Errorf("Access-Control-Allow-Origin: expected '%s', got '%s'", e, g)
	}

	allowedHeaders := strings.ToLower(res.Header().Get("Access-Control-Allow-Headers"))
	for _, h := range []string{"authorization", "content-type"} {
		if !strings.Contains(allowedHeaders, h) {
			t.Errorf("Access-Control-Allow-Headers: expected '%s' to contain '%s'", allowedHeaders, h)
		}
	}

	if e, g := 0, len(provider.requests); e != g {
		t.Errorf("len(provider.requests): expected %d, got %d", e, g)
	}
}

func TestRequestOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/create-checkout", nil)

	if e, g := "", requestOrigin(req); e != g {
		t.Errorf("requestOrigin(): expected '%s', got '%s'", e, g)
	}
}
