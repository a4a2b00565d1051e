package component

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/markdown"
	httpURL "github.com/bornholm/maven/internal/http/url"
)

//go:embed templates/*.gohtml
var templates embed.FS

//go:embed assets/*
var assets embed.FS

func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}

	return sub
}

type LinkItem struct {
	URL   string
	Label string
}

// Page holds the values shared by every page layout. View models embed it.
type Page struct {
	Title         string
	BaseURL       string
	CurrentPath   string
	User          model.User
	Theme         model.Theme
	Notifications []model.Notification
}

var funcs = template.FuncMap{
	"url":       joinURL,
	"isCurrent": isCurrent,
	"markdown":  renderMarkdown,
}

var layout = template.Must(template.New("").Funcs(funcs).ParseFS(templates, "templates/layout.gohtml"))

// NewPage returns the shared layout completed with the templates matching
// the given patterns. Pages must define a "content" template.
func NewPage(fsys fs.FS, patterns ...string) *template.Template {
	tmpl := template.Must(layout.Clone())
	return template.Must(tmpl.ParseFS(fsys, patterns...))
}

// Render returns the page as a component, rendered with the given view
// model.
func Render(page *template.Template, vmodel any) templ.Component {
	return templ.FromGoHTML(page.Lookup("layout"), vmodel)
}

var errorPage = NewPage(templates, "templates/error.gohtml")

type ErrorPageVModel struct {
	Page
	Message string
	Links   []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Render(errorPage, vmodel)
}

func joinURL(base string, segments ...string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		baseURL = &url.URL{Path: "/"}
	}

	return httpURL.Mutate(baseURL, httpURL.WithPath(segments...)).String()
}

func isCurrent(currentPath string, base string, segment string) bool {
	baseURL, err := url.Parse(joinURL(base, segment))
	if err != nil {
		return false
	}

	return baseURL.Path == currentPath
}

func renderMarkdown(source string) template.HTML {
	html, err := markdown.ToHTML(source)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}

	return html
}
