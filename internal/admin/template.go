package admin

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := layout.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

type IndexTemplateData struct {
	layout.Page
	MemberCount  int64
	MessageCount int64
	Messages     []*store.ContactMessage
	MembersPath  string
}

type MembersTemplateData struct {
	layout.Page
	Members    []*store.Member
	Roles      []constants.Role
	Prefix     string
	PageNumber int
	PrevPage   int
	NextPage   int
	HasNext    bool
	CurrentID  int64
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)), slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := authz.ContextUser(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if user.UserRole() != constants.RoleAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
