package webui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/maven/internal/adapter/memory"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/service"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	"github.com/bornholm/maven/internal/filesystem"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/spf13/afero"
)

func TestHandlerAccess(t *testing.T) {
	users := memory.NewUserStore()
	tasks := memory.NewTaskStore(model.NewTask(model.NewTaskID(), "Write tests"))

	active := model.NewUser("github", "1", "active@example.net", "active")
	inactive := model.NewUser("github", "2", "inactive@example.net", "inactive")
	inactive.SetActive(false)

	knownUsers := map[string]model.User{
		"active":   active,
		"inactive": inactive,
	}

	authenticate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, exists := knownUsers[r.Header.Get("X-Test-User")]
			if !exists {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(httpCtx.SetUser(r.Context(), user)))
		})
	}

	profileManager := service.NewProfileManager(users, filesystem.NewAvatarStore(afero.NewMemMapFs()))
	controller := boardService.NewController(tasks, nil)

	handler := NewHandler(controller, tasks, profileManager, WithAuthenticate(authenticate))

	type testCase struct {
		Path         string
		User         string
		ExpectedCode int
	}

	testCases := []testCase{
		{Path: "/", ExpectedCode: http.StatusOK},
		{Path: "/assets/style.css", ExpectedCode: http.StatusOK},
		{Path: "/dashboard/", ExpectedCode: http.StatusUnauthorized},
		{Path: "/dashboard/", User: "active", ExpectedCode: http.StatusOK},
		{Path: "/dashboard/", User: "inactive", ExpectedCode: http.StatusForbidden},
		{Path: "/profile/", User: "active", ExpectedCode: http.StatusOK},
		{Path: "/upgrade/", User: "active", ExpectedCode: http.StatusOK},
		{Path: "/upgrade/", ExpectedCode: http.StatusUnauthorized},
		{Path: "/avatars/unknown.png", ExpectedCode: http.StatusNotFound},
		{Path: "/unknown", ExpectedCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.User+tc.Path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			if tc.User != "" {
				req.Header.Set("X-Test-User", tc.User)
			}

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedCode, res.Code; e != g {
				t.Errorf("res.Code: expected %d, got %d", e, g)
			}
		})
	}
}
