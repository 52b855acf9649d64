package layout

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/bornholm/upline/internal/ui"
	"github.com/bornholm/upline/internal/ui/menu"
	"github.com/pkg/errors"
)

//go:embed templates/**
var layoutFs embed.FS

// Templates parses the given filesystems along with the page header and the
// mobile menu component.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{menu.Templates(), layoutFs}, filesystems...)

	tmpl, err := ui.Templates(funcs, filesystems...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}
