package site

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type DashboardPageData struct {
	layout.Page
	Member        *store.Member
	ReferralLink  string
	ReferralCount int64
	Levels        []constants.DistributionLevel
	ReferralsPath string
}

func (h *Handler) getDashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	member, ok := contextMember(r)
	if !ok {
		http.Redirect(w, r, constants.RouteLogin, http.StatusSeeOther)
		return
	}

	count, err := h.store.CountReferrals(ctx, member.ID)
	if err != nil {
		slog.ErrorContext(ctx, "could not count referrals", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "dashboard", DashboardPageData{
		Page:          h.layout.Page(r, constants.TitleDashboard),
		Member:        member,
		ReferralLink:  h.referralLink(member.ReferralCode),
		ReferralCount: count,
		Levels:        h.opts.Distribution,
		ReferralsPath: constants.RouteReferrals,
	})
}

type ReferralsPageData struct {
	layout.Page
	Referrals     []*store.Member
	ReferralLink  string
	DashboardPath string
}

func (h *Handler) getReferralsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	member, ok := contextMember(r)
	if !ok {
		http.Redirect(w, r, constants.RouteLogin, http.StatusSeeOther)
		return
	}

	referrals, err := h.store.ListReferrals(ctx, member.ID)
	if err != nil {
		slog.ErrorContext(ctx, "could not list referrals", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render(w, r, http.StatusOK, "referrals", ReferralsPageData{
		Page:          h.layout.Page(r, constants.TitleReferrals),
		Referrals:     referrals,
		ReferralLink:  h.referralLink(member.ReferralCode),
		DashboardPath: constants.RouteDashboard,
	})
}

func (h *Handler) referralLink(code string) string {
	return strings.TrimSuffix(h.opts.BaseURL, "/") + constants.RouteRegister + "?" + url.Values{
		constants.ReferralQueryParam: []string{code},
	}.Encode()
}

func contextMember(r *http.Request) (*store.Member, bool) {
	user, ok := authz.ContextUser(r.Context())
	if !ok {
		return nil, false
	}

	member, ok := user.(*store.Member)
	return member, ok
}
