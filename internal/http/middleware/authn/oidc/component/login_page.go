package component

import (
	"embed"

	"github.com/a-h/templ"
	common "github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var loginPage = common.NewPage(templates, "templates/login.gohtml")

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type LoginPageVModel struct {
	common.Page
	Providers []Provider
}

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return common.Render(loginPage, vmodel)
}
