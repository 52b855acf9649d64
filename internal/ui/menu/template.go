package menu

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/bornholm/upline/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// Templates returns the filesystem holding the "mobile-menu" component,
// to be merged by pages embedding the menu.
func Templates() fs.FS {
	return templateFs
}

// Render writes the "mobile-menu" fragment of the given menu.
func Render(w io.Writer, m *MobileMenu) error {
	if err := templates.ExecuteTemplate(w, "mobile-menu", m.View()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
