package landing

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/handler/webui/landing/component"
	"github.com/bornholm/maven/internal/http/middleware/authn"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) getLandingPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.LandingPageVModel{
		Features: component.DefaultFeatures,
	}

	if err := common.FillViewModel(w, r, &vmodel.Page); err != nil {
		common.HandleError(w, r, err)
		return
	}

	templ.Handler(component.LandingPage(vmodel)).ServeHTTP(w, r)
}

// redirectToAuth sends signed-in users to their dashboard and the others to
// the login page.
func (h *Handler) redirectToAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if authn.ContextUser(ctx) != nil {
		http.Redirect(w, r, common.BaseURL(ctx, "/dashboard/"), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, common.BaseURL(ctx, "/auth/oidc/login"), http.StatusSeeOther)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	common.HandleError(w, r, common.NewHTTPError(http.StatusNotFound))
}

func NewHandler() *Handler {
	h := &Handler{
		mux: http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.getLandingPage)
	h.mux.HandleFunc("GET /login", h.redirectToAuth)
	h.mux.HandleFunc("GET /signup", h.redirectToAuth)
	h.mux.HandleFunc("/", h.notFound)

	return h
}

var _ http.Handler = &Handler{}
