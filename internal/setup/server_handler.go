package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/admin"
	"github.com/bornholm/upline/internal/authn"
	"github.com/bornholm/upline/internal/authn/password"
	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/config"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/pprof"
	"github.com/bornholm/upline/internal/ratelimit"
	"github.com/bornholm/upline/internal/site"
	"github.com/bornholm/upline/internal/ui"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/internal/ui/menu"
	"github.com/bornholm/upline/pkg/assets"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	features, err := conf.Site.DecodeFeatures()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	distribution, err := conf.Income.Distribution()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	members, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessions, err := NewSessionManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics, err := NewMetricsFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	destinations := ui.DefaultDestinations()
	pageLayout := layout.New(string(conf.Site.Name), destinations)

	// Static assets

	var assetsOptions any
	if conf.Assets.Options != nil {
		assetsOptions = conf.Assets.Options.Data
	}

	assetsSource, err := assets.New(assets.Type(conf.Assets.Type), assetsOptions)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle(constants.RouteAssets, assets.Handler(constants.RouteAssets, assetsSource))

	// Mobile menu fragments

	menuHandler := menu.NewHandler(constants.RouteMenu, destinations, metrics.MenuOptions()...)
	mux.Handle(constants.RouteMenu, menuHandler)
	mux.Handle(constants.RouteMenu+"/", menuHandler)

	// Authentication

	passwordOptions := []password.OptionFunc{
		password.WithRegistration(features.Registration),
		password.WithRateLimiter(ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst))),
		password.WithOnLogin(metrics.ObserveLogin),
		password.WithOnRegister(metrics.ObserveRegistration),
	}

	if features.OAuth2Login {
		oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		mux.Handle(constants.RouteAuth+"/", oauth2Handler)

		providers := make([]password.ExternalProvider, 0)
		for _, p := range oauth2Handler.Providers() {
			providers = append(providers, password.ExternalProvider{
				Label: p.Label,
				Icon:  p.Icon,
				URL:   oauth2Handler.ProviderURL(p),
			})
		}

		passwordOptions = append(passwordOptions, password.WithProviders(providers...))
	}

	passwordHandler := password.NewHandler(members, sessions, pageLayout, passwordOptions...)
	mux.Handle(constants.RouteLogin, passwordHandler)
	mux.Handle(constants.RouteRegister, passwordHandler)
	mux.Handle(constants.RouteLogout, passwordHandler)

	// Administration

	mux.Handle(constants.RouteAdmin+"/", admin.NewHandler(constants.RouteAdmin, members, pageLayout))

	if features.Metrics {
		mux.Handle(constants.RouteMetrics, metrics.Handler())
	}

	if features.Profiling {
		mux.Handle(constants.RouteDebug+"/", pprof.NewHandler(constants.RouteDebug))
	}

	// Application shell

	siteHandler, err := site.NewHandler(
		members, pageLayout,
		site.WithFeatures(features),
		site.WithDistribution(distribution),
		site.WithBaseURL(string(conf.HTTP.BaseURL)),
		site.WithContactEmail(string(conf.Site.ContactEmail)),
		site.WithOnContact(metrics.ObserveContactMessage),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/", siteHandler)

	contactLimiter := ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Rate), int(conf.HTTP.RateLimit.Burst))
	mux.Handle("POST "+constants.RouteContact, contactLimiter.Middleware(ratelimit.RemoteAddr)(siteHandler))

	accessRules, err := NewAccessRulesFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	onAuthenticated, err := NewOnAuthenticatedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	auth := authn.Chain(
		authn.WithAnonymous(true),
		authn.WithAuthenticators(sessions.Authenticator(members)),
		authn.WithOnAuthenticated(onAuthenticated),
	)

	slogMiddleware := sloghttp.New(slog.Default())

	var handler http.Handler = mux
	handler = authz.Middleware(accessRules...)(handler)
	handler = auth(handler)
	handler = slogMiddleware(handler)

	return handler, nil
}
