package config

import "github.com/goccy/go-yaml"

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	BaseURL   InterpolatedString `yaml:"baseUrl"`
	Session   Session            `yaml:"session"`
	RateLimit RateLimit          `yaml:"rateLimit"`
}

type Session struct {
	Name   InterpolatedString      `yaml:"name"`
	Keys   InterpolatedStringSlice `yaml:"keys"`
	Cookie Cookie                  `yaml:"cookie"`
}

type Cookie struct {
	Path     InterpolatedString `yaml:"path"`
	HTTPOnly InterpolatedBool   `yaml:"httpOnly"`
	Secure   InterpolatedBool   `yaml:"secure"`
	MaxAge   *InterpolatedInt   `yaml:"maxAge"`
}

type RateLimit struct {
	Rate  InterpolatedFloat `yaml:"rate"`
	Burst InterpolatedInt   `yaml:"burst"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${UPLINE_HTTP_ADDRESS:-:8080}",
		BaseURL: "${UPLINE_HTTP_BASE_URL:-http://localhost:8080}",
		Session: Session{
			Name: "${UPLINE_HTTP_SESSION_NAME:-upline_session}",
			Keys: InterpolatedStringSlice{"${UPLINE_HTTP_SESSION_KEY:-}"},
			Cookie: Cookie{
				Path:     "/",
				HTTPOnly: true,
				Secure:   false,
				MaxAge:   NewInterpolatedInt(60 * 60 * 24 * 7),
			},
		},
		RateLimit: RateLimit{
			Rate:  0.5,
			Burst: 5,
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                       []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":               []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".baseUrl":               []*yaml.Comment{yaml.HeadComment(" Public base URL, used for referral links and OAuth2 callbacks")},
		".session.keys":          []*yaml.Comment{yaml.HeadComment(" Session cookie signing keys", " A random key is generated at startup when empty")},
		".session.cookie":        []*yaml.Comment{yaml.HeadComment(" Session cookie attributes")},
		".session.cookie.maxAge": []*yaml.Comment{yaml.HeadComment(" Session lifetime, in seconds")},
		".rateLimit":             []*yaml.Comment{yaml.HeadComment(" Login and registration attempts rate limit, per client address")},
		".rateLimit.rate":        []*yaml.Comment{yaml.HeadComment(" Attempts per second")},
	}
}
