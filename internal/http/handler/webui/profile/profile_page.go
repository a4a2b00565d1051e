package profile

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/core/model"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/handler/webui/profile/component"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

var themes = []component.ThemeOption{
	{Label: "Light", Value: model.ThemeLight},
	{Label: "Dark", Value: model.ThemeDark},
}

func (h *Handler) getProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	profile, err := h.profileManager.GetProfile(ctx, user.ID())
	if err != nil {
		common.HandleError(w, r, errors.Wrap(err, "could not retrieve profile"))
		return
	}

	vmodel := component.ProfilePageVModel{
		Profile:       profile,
		Themes:        themes,
		MaxAvatarSize: humanize.IBytes(uint64(h.maxAvatarSize)),
	}

	if err := common.FillViewModel(w, r, &vmodel.Page); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Title = "Profile"
	vmodel.Theme = profile.Settings.Theme

	templ.Handler(component.ProfilePage(vmodel)).ServeHTTP(w, r)
}
