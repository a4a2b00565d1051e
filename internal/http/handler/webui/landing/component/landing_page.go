package component

import (
	"embed"

	"github.com/a-h/templ"
	common "github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var landingPage = common.NewPage(templates, "templates/landing.gohtml")

type Feature struct {
	Icon        string
	Title       string
	Description string
}

var DefaultFeatures = []Feature{
	{Icon: "🎓", Title: "Student Talent", Description: "Connect with ambitious student developers and marketers"},
	{Icon: "💰", Title: "Affordable Rates", Description: "Get quality work at student-friendly prices"},
	{Icon: "🚀", Title: "Fast Development", Description: "Launch your projects faster than ever before"},
	{Icon: "⭐", Title: "Quality Work", Description: "Vetted students with proven skills and passion"},
}

type LandingPageVModel struct {
	common.Page
	Features []Feature
}

func LandingPage(vmodel LandingPageVModel) templ.Component {
	return common.Render(landingPage, vmodel)
}
