package config

import (
	"github.com/bornholm/upline/internal/constants"
	"github.com/goccy/go-yaml"
)

type Auth struct {
	Providers AuthProviders        `yaml:"providers"`
	Admins    []InterpolatedString `yaml:"admins"`
	Access    []AccessRule         `yaml:"access"`
}

// AccessRule restricts the routes matching Prefix to the requests for which
// Rule evaluates to true.
type AccessRule struct {
	Prefix InterpolatedString `yaml:"prefix"`
	Rule   InterpolatedString `yaml:"rule"`
}

type AuthProviders struct {
	Google OAuth2Provider `yaml:"google"`
	Github OAuth2Provider `yaml:"github"`
	OIDC   OIDCProvider   `yaml:"oidc"`
}

type OAuth2Provider struct {
	Key    InterpolatedString      `yaml:"key"`
	Secret InterpolatedString      `yaml:"secret"`
	Scopes InterpolatedStringSlice `yaml:"scopes"`
}

type OIDCProvider struct {
	OAuth2Provider `yaml:",inline"`
	DiscoveryURL   InterpolatedString `yaml:"discoveryUrl"`
	Icon           InterpolatedString `yaml:"icon"`
	Label          InterpolatedString `yaml:"label"`
}

func NewDefaultAuthConfig() Auth {
	return Auth{
		Providers: AuthProviders{
			Google: OAuth2Provider{
				Key:    "${UPLINE_AUTH_GOOGLE_KEY:-}",
				Secret: "${UPLINE_AUTH_GOOGLE_SECRET:-}",
				Scopes: InterpolatedStringSlice{"email"},
			},
			Github: OAuth2Provider{
				Key:    "${UPLINE_AUTH_GITHUB_KEY:-}",
				Secret: "${UPLINE_AUTH_GITHUB_SECRET:-}",
				Scopes: InterpolatedStringSlice{"user:email"},
			},
			OIDC: OIDCProvider{
				OAuth2Provider: OAuth2Provider{
					Key:    "${UPLINE_AUTH_OIDC_KEY:-}",
					Secret: "${UPLINE_AUTH_OIDC_SECRET:-}",
					Scopes: InterpolatedStringSlice{"openid", "email", "profile"},
				},
				DiscoveryURL: "${UPLINE_AUTH_OIDC_DISCOVERY_URL:-}",
				Icon:         "fa-key",
				Label:        "${UPLINE_AUTH_OIDC_LABEL:-OpenID Connect}",
			},
		},
		Admins: []InterpolatedString{"${UPLINE_AUTH_ADMIN_EMAIL:-}"},
		Access: []AccessRule{
			{
				Prefix: constants.RouteDashboard,
				Rule:   `authenticated && role in ["member", "admin"]`,
			},
			{
				Prefix: constants.RouteAdmin,
				Rule:   `authenticated && role == ROLE_ADMIN`,
			},
			{
				Prefix: constants.RouteDebug,
				Rule:   `authenticated && role == ROLE_ADMIN`,
			},
		},
	}
}

func NewAuthConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":           []*yaml.Comment{yaml.HeadComment(" Auth configuration")},
		".providers": []*yaml.Comment{yaml.HeadComment(" OAuth2 identity providers, enabled when both key and secret are set")},
		".admins":    []*yaml.Comment{yaml.HeadComment(" Email addresses of the members granted the admin role")},
		".access":    []*yaml.Comment{yaml.HeadComment(" Routes access rules", " Available variables: authenticated, role, path, method", " See https://expr-lang.org/docs/language-definition")},
	}
}
