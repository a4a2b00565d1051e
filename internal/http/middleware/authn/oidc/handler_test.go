package oidc

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/maven/internal/http/middleware/authn"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
)

func TestSessionUser(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	handler := NewHandler(store, WithProviders(Provider{ID: "github", Label: "Github"}))

	protected := handler.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := authn.ContextUser(r.Context())
		if user == nil {
			t.Errorf("expected a context user")
			return
		}

		if e, g := "42", user.Subject; e != g {
			t.Errorf("user.Subject: expected '%s', got '%s'", e, g)
		}

		w.WriteHeader(http.StatusNoContent)
	}))

	// Anonymous requests are redirected to the login page
	res := httptest.NewRecorder()
	protected.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/auth/oidc/login", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	// Authenticated requests go through
	res = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := handler.storeSessionUser(res, req, &authn.User{Provider: "github", Subject: "42", Email: "jane@example.net"}); err != nil {
		t.Fatalf("%+v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	res = httptest.NewRecorder()
	protected.ServeHTTP(res, req)

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestLoginPage(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	handler := NewHandler(store, WithProviders(Provider{ID: "github", Label: "Github", Icon: "fa-github"}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/oidc/login", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body := res.Body.String()

	if !strings.Contains(body, "/auth/oidc/providers/github") {
		t.Errorf("expected login page to link to the github provider, got: %s", body)
	}
}

func TestGetUserDisplayName(t *testing.T) {
	type testCase struct {
		User     goth.User
		Expected string
	}

	testCases := []testCase{
		{
			User:     goth.User{RawData: map[string]any{"preferred_username": "jdoe"}, NickName: "jane"},
			Expected: "jdoe",
		},
		{
			User:     goth.User{NickName: "jane", Name: "Jane Doe"},
			Expected: "jane",
		},
		{
			User:     goth.User{FirstName: "Jane", LastName: "Doe"},
			Expected: "Jane Doe",
		},
		{
			User:     goth.User{UserID: "42"},
			Expected: "42",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Expected, func(t *testing.T) {
			if e, g := tc.Expected, getUserDisplayName(tc.User); e != g {
				t.Errorf("display name: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestSessionFromUnknownProvider(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	handler := NewHandler(store, WithProviders(Provider{ID: "github", Label: "Github"}))

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := handler.storeSessionUser(res, req, &authn.User{Provider: "gitea", Subject: "42"}); err != nil {
		t.Fatalf("%+v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	for _, c := range res.Result().Cookies() {
		req.AddCookie(c)
	}

	user, err := handler.Authenticate(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if user != nil {
		t.Errorf("expected no user, got %+v", user)
	}
}
