package authz

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

// Middleware evaluates every access rule matching the request path. Anonymous
// users denied access are redirected to the login page, others get a 403.
func Middleware(rules ...AccessRule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			for _, rule := range rules {
				if !rule.Match(r.URL.Path) {
					continue
				}

				allowed, err := rule.Rule.Exec(NewEnv(r))
				if err != nil {
					slog.ErrorContext(ctx, "could not execute access rule", log.Error(errors.WithStack(err)), slog.String("prefix", rule.Prefix))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}

				if allowed {
					continue
				}

				if _, authenticated := ContextUser(ctx); !authenticated {
					redirectToLogin(w, r)
					return
				}

				slog.DebugContext(ctx, "access denied", slog.String("prefix", rule.Prefix))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	loginURL := &url.URL{
		Path:     constants.RouteLogin,
		RawQuery: url.Values{constants.NextQueryParam: []string{r.URL.RequestURI()}}.Encode(),
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Location", loginURL.String())
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	http.Redirect(w, r, loginURL.String(), http.StatusSeeOther)
}
