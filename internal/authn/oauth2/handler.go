package oauth2

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/upline/internal/authn/session"
	"github.com/bornholm/upline/internal/store"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
}

type MemberFinder interface {
	FindOrCreateMember(ctx context.Context, subject, provider, email, nickname string) (*store.Member, error)
}

// Handler runs the OAuth2 flows of the configured providers. Once the
// provider identity is known, the matching member is logged in the
// application session.
type Handler struct {
	mux                *http.ServeMux
	members            MemberFinder
	sessions           *session.Manager
	providers          []Provider
	prefix             string
	postLoginRedirect  string
	postLogoutRedirect string
	errorRedirect      string
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(members MemberFinder, sessions *session.Manager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:                http.NewServeMux(),
		members:            members,
		sessions:           sessions,
		providers:          opts.Providers,
		prefix:             opts.Prefix,
		postLoginRedirect:  opts.PostLoginRedirect,
		postLogoutRedirect: opts.PostLogoutRedirect,
		errorRedirect:      opts.ErrorRedirect,
	}

	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}", h.prefix), withContextProvider(http.HandlerFunc(h.handleProvider)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/callback", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderCallback)))
	h.mux.Handle(fmt.Sprintf("GET %s/providers/{provider}/logout", h.prefix), withContextProvider(http.HandlerFunc(h.handleProviderLogout)))

	return h
}

func (h *Handler) Providers() []Provider {
	return h.providers
}

// ProviderURL returns the path starting the login flow of the given provider.
func (h *Handler) ProviderURL(p Provider) string {
	return fmt.Sprintf("%s/providers/%s", h.prefix, p.ID)
}

var _ http.Handler = &Handler{}

func withContextProvider(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		provider := r.PathValue("provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
