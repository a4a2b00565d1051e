package component

import (
	"embed"

	"github.com/a-h/templ"
	common "github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var upgradePage = common.NewPage(templates, "templates/upgrade.gohtml")

type UpgradePageVModel struct {
	common.Page
	UserID         string
	PublishableKey string
}

func UpgradePage(vmodel UpgradePageVModel) templ.Component {
	return common.Render(upgradePage, vmodel)
}
