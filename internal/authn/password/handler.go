package password

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/upline/internal/authn/session"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/ratelimit"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type MemberStore interface {
	Authenticate(ctx context.Context, email, password string) (*store.Member, error)
	CreateMember(ctx context.Context, newMember store.NewMember) (*store.Member, error)
}

// Handler serves the email/password login, registration and logout pages.
type Handler struct {
	mux      *http.ServeMux
	store    MemberStore
	sessions *session.Manager
	layout   *layout.Layout
	opts     *Options
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store MemberStore, sessions *session.Manager, layout *layout.Layout, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:      http.NewServeMux(),
		store:    store,
		sessions: sessions,
		layout:   layout,
		opts:     opts,
	}

	h.mux.HandleFunc("GET "+constants.RouteLogin, h.getLoginPage)
	h.mux.HandleFunc("POST "+constants.RouteLogin, h.handleLogin)
	h.mux.HandleFunc("GET "+constants.RouteRegister, h.getRegisterPage)
	h.mux.HandleFunc("POST "+constants.RouteRegister, h.handleRegister)
	h.mux.HandleFunc("POST "+constants.RouteLogout, h.handleLogout)

	return h
}

func (h *Handler) allow(r *http.Request) bool {
	key, err := ratelimit.RemoteAddr(r)
	if err != nil {
		slog.WarnContext(r.Context(), "could not identify client", log.Error(errors.WithStack(err)))
		return false
	}

	return h.opts.RateLimiter.Allow(key)
}

// redirectTarget returns the local path to go to after login.
func (h *Handler) redirectTarget(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return h.opts.PostLoginRedirect
	}

	return next
}

var _ http.Handler = &Handler{}
