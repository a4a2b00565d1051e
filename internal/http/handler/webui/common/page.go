package common

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/flash"
	"github.com/bornholm/maven/internal/http/handler/webui/common/component"
	httpURL "github.com/bornholm/maven/internal/http/url"
	"github.com/pkg/errors"
)

// FillViewModel completes the shared page values from the request and
// consumes its pending flash notifications.
func FillViewModel(w http.ResponseWriter, r *http.Request, page *component.Page) error {
	ctx := r.Context()

	fillPage(ctx, page)

	notifications, err := flash.Pop(w, r)
	if err != nil {
		return errors.WithStack(err)
	}

	page.Notifications = notifications

	return nil
}

func fillPage(ctx context.Context, page *component.Page) {
	page.BaseURL = httpCtx.BaseURL(ctx).String()
	page.CurrentPath = httpCtx.CurrentURL(ctx).Path
	page.User = httpCtx.User(ctx)
	page.Theme = httpCtx.Theme(ctx)

	if page.Theme == "" {
		page.Theme = model.ThemeLight
	}
}

// BaseURL returns the absolute URL of the given path, relative to the
// application base URL.
func BaseURL(ctx context.Context, path string, funcs ...httpURL.MutationFunc) string {
	baseURL := httpCtx.BaseURL(ctx)
	funcs = append([]httpURL.MutationFunc{httpURL.WithPath(path)}, funcs...)
	return httpURL.Mutate(baseURL, funcs...).String()
}

// RedirectWithFlash stores the given notifications and redirects to the
// given path, relative to the base URL.
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, path string, notifications ...model.Notification) {
	if err := flash.Add(w, r, notifications...); err != nil {
		slog.WarnContext(r.Context(), "could not store flash notifications", slogx.Error(err))
	}

	http.Redirect(w, r, BaseURL(r.Context(), path), http.StatusSeeOther)
}
