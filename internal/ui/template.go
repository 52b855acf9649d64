package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"strconv"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

//go:embed templates/**
var commonFs embed.FS

var commonFuncs = template.FuncMap{
	"humanizeInt": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"humanizeTime": func(t time.Time) string {
		if t.IsZero() {
			return "never"
		}

		return humanize.Time(t)
	},
	"percent": func(p float64) string {
		return humanize.FtoaWithDigits(p, 2) + " %"
	},
	"itoa": strconv.Itoa,
}

// Templates parses the common templates along with the views, layouts and components
// found in the given filesystems. Files of earlier filesystems shadow the later ones.
func Templates(funcs template.FuncMap, filesystems ...fs.FS) (*template.Template, error) {
	filesystems = append([]fs.FS{commonFs}, filesystems...)
	merged := mergefs.Merge(filesystems...)

	patterns := []string{
		"**/views/*.gohtml",
		"**/layouts/*.gohtml",
		"**/components/*.gohtml",
	}

	templates := make([]string, 0)
	for _, p := range patterns {
		matches, err := fs.Glob(merged, p)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		templates = append(templates, matches...)
	}

	tmpl := template.New("").Funcs(sprig.FuncMap()).Funcs(commonFuncs)

	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}

	tmpl, err := tmpl.ParseFS(merged, templates...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tmpl, nil
}

type HeadTemplateData struct {
	PageTitle string
	SiteName  string
}
