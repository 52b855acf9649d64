package site

import (
	"context"
	"net/http"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/pkg/errors"
)

type MemberStore interface {
	CountMembers(ctx context.Context) (int64, error)
	CountReferrals(ctx context.Context, sponsorID int64) (int64, error)
	ListReferrals(ctx context.Context, sponsorID int64) ([]*store.Member, error)
	SaveContactMessage(ctx context.Context, msg store.ContactMessage) (int64, error)
}

// Handler is the application shell: public pages, contact form and member dashboard.
type Handler struct {
	mux    *http.ServeMux
	store  MemberStore
	layout *layout.Layout
	opts   *Options
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store MemberStore, layout *layout.Layout, funcs ...OptionFunc) (*Handler, error) {
	if err := ui.ValidateDestinations(layout.Destinations(), constants.IsKnownRoute); err != nil {
		return nil, errors.WithStack(err)
	}

	h := &Handler{
		mux:    http.NewServeMux(),
		store:  store,
		layout: layout,
		opts:   NewOptions(funcs...),
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)
	h.mux.HandleFunc("GET "+constants.RouteAbout, h.getAboutPage)
	h.mux.HandleFunc("GET "+constants.RoutePlan, h.getPlanPage)
	h.mux.HandleFunc("GET "+constants.RouteContact, h.getContactPage)
	h.mux.HandleFunc("POST "+constants.RouteContact, h.handleContact)
	h.mux.HandleFunc("GET "+constants.RouteDashboard, h.getDashboardPage)
	h.mux.HandleFunc("GET "+constants.RouteReferrals, h.getReferralsPage)
	h.mux.HandleFunc("/", h.getNotFoundPage)

	return h, nil
}

var _ http.Handler = &Handler{}
