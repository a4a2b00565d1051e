package component

import (
	"embed"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/core/model"
	common "github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var profilePage = common.NewPage(templates, "templates/profile.gohtml")

type ThemeOption struct {
	Label string
	Value model.Theme
}

type ProfilePageVModel struct {
	common.Page
	Profile       *model.Profile
	Themes        []ThemeOption
	MaxAvatarSize string
}

func ProfilePage(vmodel ProfilePageVModel) templ.Component {
	return common.Render(profilePage, vmodel)
}
