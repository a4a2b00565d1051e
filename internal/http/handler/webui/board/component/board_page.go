package component

import (
	"embed"

	"github.com/a-h/templ"
	boardService "github.com/bornholm/maven/internal/core/service/board"
	common "github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templates embed.FS

var boardPage = common.NewPage(templates, "templates/board.gohtml")

type BoardPageVModel struct {
	common.Page
	Loading bool
	Columns []boardService.Column
}

func BoardPage(vmodel BoardPageVModel) templ.Component {
	return common.Render(boardPage, vmodel)
}
