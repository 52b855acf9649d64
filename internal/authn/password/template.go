package password

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

//go:embed templates/**
var fs embed.FS

var templates *template.Template

func init() {
	t, err := layout.Templates(nil, fs)
	if err != nil {
		panic(errors.WithStack(err))
	}
	templates = t
}

func render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "could not render template", log.Error(errors.WithStack(err)), slog.String("template", name))
	}
}
