package common

import (
	"net/http"

	"github.com/bornholm/maven/internal/http/handler/webui/common/component"
)

// NewHandler serves the static assets shared by the pages.
func NewHandler() http.Handler {
	return http.FileServerFS(component.Assets())
}
