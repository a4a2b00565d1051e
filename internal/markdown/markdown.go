package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// New returns the markdown converter used for user content. Raw HTML is
// never rendered.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

var defaultMarkdown = New()

// ToHTML converts the given markdown source to HTML.
func ToHTML(source string) (template.HTML, error) {
	var buff bytes.Buffer

	if err := defaultMarkdown.Convert([]byte(source), &buff); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buff.String()), nil
}
