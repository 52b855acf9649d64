package oauth2

import "github.com/bornholm/upline/internal/constants"

type Options struct {
	Providers          []Provider
	Prefix             string
	PostLoginRedirect  string
	PostLogoutRedirect string
	ErrorRedirect      string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:          make([]Provider, 0),
		Prefix:             constants.RouteAuth,
		PostLoginRedirect:  constants.RouteDashboard,
		PostLogoutRedirect: constants.RouteHome,
		ErrorRedirect:      constants.RouteLogin,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

func WithPostLoginRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLoginRedirect = path
	}
}

func WithPostLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.PostLogoutRedirect = path
	}
}
