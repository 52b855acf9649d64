package config

import (
	"github.com/bornholm/upline/internal/constants"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Site struct {
	Name         InterpolatedString `yaml:"name"`
	ContactEmail InterpolatedString `yaml:"contactEmail"`
	Features     *InterpolatedMap   `yaml:"features"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		Name:         "${UPLINE_SITE_NAME:-" + constants.SiteName + "}",
		ContactEmail: "${UPLINE_SITE_CONTACT_EMAIL:-contact@example.net}",
		Features: &InterpolatedMap{
			Data: map[string]any{
				"registration": "${UPLINE_FEATURE_REGISTRATION:-true}",
				"oauth2Login":  "${UPLINE_FEATURE_OAUTH2_LOGIN:-false}",
				"contactForm":  "${UPLINE_FEATURE_CONTACT_FORM:-true}",
				"metrics":      "${UPLINE_FEATURE_METRICS:-true}",
				"profiling":    "${UPLINE_FEATURE_PROFILING:-false}",
			},
		},
	}
}

// DecodeFeatures returns the feature flags of the site, unspecified flags keeping their default value.
func (s Site) DecodeFeatures() (constants.Features, error) {
	features := constants.DefaultFeatures()

	if s.Features == nil || s.Features.Data == nil {
		return features, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &features,
	})
	if err != nil {
		return features, errors.WithStack(err)
	}

	if err := decoder.Decode(s.Features.Data); err != nil {
		return features, errors.Wrap(err, "could not decode site features")
	}

	return features, nil
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":              []*yaml.Comment{yaml.HeadComment(" Site configuration")},
		".name":         []*yaml.Comment{yaml.HeadComment(" Site name, displayed in titles and header")},
		".contactEmail": []*yaml.Comment{yaml.HeadComment(" Address displayed on the contact page")},
		".features":     []*yaml.Comment{yaml.HeadComment(" Feature flags")},
	}
}
