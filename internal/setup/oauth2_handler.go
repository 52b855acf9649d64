package setup

import (
	"context"
	"fmt"

	"github.com/bornholm/upline/internal/authn/oauth2"
	"github.com/bornholm/upline/internal/config"
	"github.com/bornholm/upline/internal/constants"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

func NewOAuth2HandlerFromConfig(ctx context.Context, conf *config.Config) (*oauth2.Handler, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := NewSessionManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	members, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	gothProviders := make([]goth.Provider, 0)
	providers := make([]oauth2.Provider, 0)

	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s%s/providers/%s/callback", conf.HTTP.BaseURL, constants.RouteAuth, provider)
	}

	if g := conf.Auth.Providers.Google; g.Key != "" && g.Secret != "" {
		googleProvider := google.New(
			string(g.Key),
			string(g.Secret),
			callbackURL("google"),
			g.Scopes...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, oauth2.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "fa-google",
		})
	}

	if gh := conf.Auth.Providers.Github; gh.Key != "" && gh.Secret != "" {
		githubProvider := github.New(
			string(gh.Key),
			string(gh.Secret),
			callbackURL("github"),
			gh.Scopes...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, oauth2.Provider{
			ID:    githubProvider.Name(),
			Label: "GitHub",
			Icon:  "fa-github",
		})
	}

	if oidc := conf.Auth.Providers.OIDC; oidc.Key != "" && oidc.Secret != "" {
		oidcProvider, err := openidConnect.New(
			string(oidc.Key),
			string(oidc.Secret),
			callbackURL("openid-connect"),
			string(oidc.DiscoveryURL),
			oidc.Scopes...,
		)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, oauth2.Provider{
			ID:    oidcProvider.Name(),
			Label: string(oidc.Label),
			Icon:  string(oidc.Icon),
		})
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	handler := oauth2.NewHandler(
		members,
		sessions,
		oauth2.WithProviders(providers...),
		oauth2.WithPrefix(constants.RouteAuth),
	)

	return handler, nil
}
