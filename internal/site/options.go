package site

import (
	"github.com/bornholm/upline/internal/constants"
)

type Options struct {
	Features     constants.Features
	Distribution []constants.DistributionLevel
	BaseURL      string
	ContactEmail string
	Tagline      string
	OnContact    func()
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Features:     constants.DefaultFeatures(),
		Distribution: constants.DefaultDistribution(),
		BaseURL:      "http://localhost:8080",
		Tagline:      constants.SiteTagline,
		OnContact:    func() {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithFeatures(features constants.Features) OptionFunc {
	return func(opts *Options) {
		opts.Features = features
	}
}

func WithDistribution(levels []constants.DistributionLevel) OptionFunc {
	return func(opts *Options) {
		opts.Distribution = levels
	}
}

// WithBaseURL sets the public URL used to build referral links.
func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithContactEmail(email string) OptionFunc {
	return func(opts *Options) {
		opts.ContactEmail = email
	}
}

func WithOnContact(fn func()) OptionFunc {
	return func(opts *Options) {
		opts.OnContact = fn
	}
}
