package oidc

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/maven/internal/http/handler/webui/common"
	"github.com/bornholm/maven/internal/http/middleware/authn/oidc/component"
)

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	vmodel := component.LoginPageVModel{
		Providers: h.providers,
	}

	if err := common.FillViewModel(w, r, &vmodel.Page); err != nil {
		common.HandleError(w, r, err)
		return
	}

	vmodel.Title = "Login"

	loginPage := component.LoginPage(vmodel)

	templ.Handler(loginPage).ServeHTTP(w, r)
}
