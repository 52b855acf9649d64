package layout

import (
	"net/http"
	"slices"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/ui"
	"github.com/bornholm/upline/internal/ui/menu"
)

type NavLink struct {
	Path   string
	Label  string
	Active bool
}

type NavbarTemplateData struct {
	SiteName      string
	ActivePath    string
	Authenticated bool
	Username      string
	Links         []NavLink
	LoginButton   ui.LoginButton
	DashboardPath string
	LogoutPath    string
	LogoutLabel   string
	Menu          menu.View
}

type Page struct {
	Head   ui.HeadTemplateData
	Navbar NavbarTemplateData
}

type displayNamer interface {
	DisplayName() string
}

// Layout builds the data shared by every page: head, header and the
// mobile menu in its initial state.
type Layout struct {
	siteName     string
	destinations []ui.Destination
}

func New(siteName string, destinations []ui.Destination) *Layout {
	return &Layout{
		siteName:     siteName,
		destinations: slices.Clone(destinations),
	}
}

func (l *Layout) SiteName() string {
	return l.siteName
}

func (l *Layout) Destinations() []ui.Destination {
	return slices.Clone(l.destinations)
}

func (l *Layout) Page(r *http.Request, title string) Page {
	navbar := NavbarTemplateData{
		SiteName:      l.siteName,
		ActivePath:    r.URL.Path,
		DashboardPath: constants.RouteDashboard,
		LogoutPath:    constants.RouteLogout,
		LogoutLabel:   constants.LabelLogout,
		Menu:          menu.New(l.destinations, nil).View(),
		Links:         make([]NavLink, 0, len(l.destinations)),
	}

	for _, d := range l.destinations {
		if d.IsPrimaryAction {
			navbar.LoginButton = ui.NewLoginButton(d)
			continue
		}

		navbar.Links = append(navbar.Links, NavLink{
			Path:   d.Path,
			Label:  d.Label,
			Active: d.Path == r.URL.Path,
		})
	}

	if user, ok := authz.ContextUser(r.Context()); ok {
		navbar.Authenticated = true
		navbar.Username = user.UserSubject()
		if named, ok := user.(displayNamer); ok {
			navbar.Username = named.DisplayName()
		}
	}

	return Page{
		Head: ui.HeadTemplateData{
			PageTitle: title,
			SiteName:  l.siteName,
		},
		Navbar: navbar,
	}
}
