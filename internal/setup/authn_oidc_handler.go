package setup

import (
	"context"
	"fmt"
	"strings"

	"github.com/bornholm/maven/internal/config"
	"github.com/bornholm/maven/internal/http/middleware/authn/oidc"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

var getOIDCAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*oidc.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	events, err := getAuthnEventsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	baseURL := strings.TrimSuffix(conf.HTTP.BaseURL, "/")
	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s/auth/oidc/providers/%s/callback", baseURL, provider)
	}

	providersConf := conf.HTTP.Authn.Providers

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oidc.Provider, 0)

	if providersConf.Google.Key != "" && providersConf.Google.Secret != "" {
		googleProvider := google.New(
			providersConf.Google.Key,
			providersConf.Google.Secret,
			callbackURL("google"),
			providersConf.Google.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, oidc.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "fa-google",
		})
	}

	if providersConf.Github.Key != "" && providersConf.Github.Secret != "" {
		githubProvider := github.New(
			providersConf.Github.Key,
			providersConf.Github.Secret,
			callbackURL("github"),
			providersConf.Github.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, oidc.Provider{
			ID:    githubProvider.Name(),
			Label: "Github",
			Icon:  "fa-github",
		})
	}

	if providersConf.Gitea.Key != "" && providersConf.Gitea.Secret != "" {
		giteaProvider := gitea.NewCustomisedURL(
			providersConf.Gitea.Key,
			providersConf.Gitea.Secret,
			callbackURL("gitea"),
			providersConf.Gitea.AuthURL,
			providersConf.Gitea.TokenURL,
			providersConf.Gitea.ProfileURL,
			providersConf.Gitea.Scopes...,
		)

		gothProviders = append(gothProviders, giteaProvider)

		providers = append(providers, oidc.Provider{
			ID:    giteaProvider.Name(),
			Label: providersConf.Gitea.Label,
			Icon:  "fa-git-alt",
		})
	}

	if providersConf.OIDC.Key != "" && providersConf.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			providersConf.OIDC.Key,
			providersConf.OIDC.Secret,
			callbackURL("openid-connect"),
			providersConf.OIDC.DiscoveryURL,
			providersConf.OIDC.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, oidc.Provider{
			ID:    oidcProvider.Name(),
			Label: providersConf.OIDC.Label,
			Icon:  providersConf.OIDC.Icon,
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	handler := oidc.NewHandler(
		sessionStore,
		oidc.WithProviders(providers...),
		oidc.WithEvents(events),
	)

	return handler, nil
})
