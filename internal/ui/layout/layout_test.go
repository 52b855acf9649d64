package layout

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui"
	"github.com/pkg/errors"
)

func TestPage(t *testing.T) {
	l := New(constants.SiteName, ui.DefaultDestinations())

	req := httptest.NewRequest("GET", constants.RouteAbout, nil)

	page := l.Page(req, "About")

	if e, g := "About", page.Head.PageTitle; e != g {
		t.Errorf("page.Head.PageTitle: expected '%s', got '%s'", e, g)
	}

	if e, g := constants.RouteLogin, page.Navbar.LoginButton.Path; e != g {
		t.Errorf("page.Navbar.LoginButton.Path: expected '%s', got '%s'", e, g)
	}

	if e, g := 4, len(page.Navbar.Links); e != g {
		t.Fatalf("len(page.Navbar.Links): expected %d, got %d", e, g)
	}

	for _, link := range page.Navbar.Links {
		if e, g := link.Path == constants.RouteAbout, link.Active; e != g {
			t.Errorf("link '%s' active: expected %v, got %v", link.Path, e, g)
		}
	}

	if page.Navbar.Authenticated {
		t.Errorf("page.Navbar.Authenticated: expected false")
	}

	if page.Navbar.Menu.IsOpen {
		t.Errorf("page.Navbar.Menu.IsOpen: expected false")
	}
}

func TestPageAuthenticated(t *testing.T) {
	l := New(constants.SiteName, ui.DefaultDestinations())

	member := &store.Member{
		ID:       1,
		Email:    "jane@example.com",
		Subject:  "jane@example.com",
		Nickname: "Jane",
		Role:     constants.RoleMember,
		Provider: store.ProviderPassword,
	}

	req := httptest.NewRequest("GET", constants.RouteDashboard, nil)
	req = req.WithContext(authz.WithContextUser(req.Context(), member))

	page := l.Page(req, "Dashboard")

	if !page.Navbar.Authenticated {
		t.Errorf("page.Navbar.Authenticated: expected true")
	}

	if e, g := "Jane", page.Navbar.Username; e != g {
		t.Errorf("page.Navbar.Username: expected '%s', got '%s'", e, g)
	}
}

func TestTemplates(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	l := New(constants.SiteName, ui.DefaultDestinations())
	page := l.Page(httptest.NewRequest("GET", constants.RouteHome, nil), "Home")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page-start", page); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := tmpl.ExecuteTemplate(&buf, "page-end", page); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body := buf.String()

	for _, expected := range []string{"<title>Home - Upline</title>", `class="btn btn-primary login-button`, `id="mobile-menu"`, `aria-current="page"`} {
		if !strings.Contains(body, expected) {
			t.Errorf("expected rendered page to contain '%s'", expected)
		}
	}
}
