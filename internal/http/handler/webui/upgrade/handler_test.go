package upgrade

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/maven/internal/core/model"
	httpCtx "github.com/bornholm/maven/internal/http/context"
)

func TestUpgradePage(t *testing.T) {
	user := model.NewUser("github", "42", "jane@example.net", "jane")

	handler := NewHandler("pk_test_123")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(httpCtx.SetUser(req.Context(), user))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{"pk_test_123", string(user.ID()), "/functions/create-checkout"} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected body to contain '%s'", expected)
		}
	}
}
