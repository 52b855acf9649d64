package password

import (
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/ratelimit"
)

// ExternalProvider is a third party login link displayed under the login form.
type ExternalProvider struct {
	Label string
	Icon  string
	URL   string
}

type Options struct {
	Registration       bool
	Providers          []ExternalProvider
	RateLimiter        *ratelimit.RateLimiter
	PostLoginRedirect  string
	PostLogoutRedirect string
	OnLogin            func(success bool)
	OnRegister         func()
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Registration:       true,
		Providers:          make([]ExternalProvider, 0),
		RateLimiter:        ratelimit.New(0.5, 5),
		PostLoginRedirect:  constants.RouteDashboard,
		PostLogoutRedirect: constants.RouteHome,
		OnLogin:            func(success bool) {},
		OnRegister:         func() {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithRegistration(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.Registration = enabled
	}
}

func WithProviders(providers ...ExternalProvider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithRateLimiter(limiter *ratelimit.RateLimiter) OptionFunc {
	return func(opts *Options) {
		opts.RateLimiter = limiter
	}
}

func WithOnLogin(fn func(success bool)) OptionFunc {
	return func(opts *Options) {
		opts.OnLogin = fn
	}
}

func WithOnRegister(fn func()) OptionFunc {
	return func(opts *Options) {
		opts.OnRegister = fn
	}
}
