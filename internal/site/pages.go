package site

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type HomePageData struct {
	layout.Page
	Tagline      string
	Registration bool
	RegisterPath string
	PlanPath     string
	MemberCount  int64
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.store.CountMembers(ctx)
	if err != nil {
		// The counter is decorative, the page is still served
		slog.ErrorContext(ctx, "could not count members", log.Error(errors.WithStack(err)))
	}

	render(w, r, http.StatusOK, "home", HomePageData{
		Page:         h.layout.Page(r, constants.TitleHome),
		Tagline:      h.opts.Tagline,
		Registration: h.opts.Features.Registration,
		RegisterPath: constants.RouteRegister,
		PlanPath:     constants.RoutePlan,
		MemberCount:  count,
	})
}

type AboutPageData struct {
	layout.Page
	SiteName string
}

func (h *Handler) getAboutPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "about", AboutPageData{
		Page:     h.layout.Page(r, constants.TitleAbout),
		SiteName: h.layout.SiteName(),
	})
}

type PlanPageData struct {
	layout.Page
	Levels []constants.DistributionLevel
	Total  float64
}

func (h *Handler) getPlanPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "plan", PlanPageData{
		Page:   h.layout.Page(r, constants.TitlePlan),
		Levels: h.opts.Distribution,
		Total:  constants.TotalPercent(h.opts.Distribution),
	})
}

func (h *Handler) getNotFoundPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "not-found", struct {
		layout.Page
		HomePath string
	}{
		Page:     h.layout.Page(r, constants.TitleNotFound),
		HomePath: constants.RouteHome,
	})
}
