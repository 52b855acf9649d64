package assets

import (
	"io/fs"
	"net/http"
	"strings"
)

// Handler serves the files of the given source under prefix.
// Directory listings are not exposed.
func Handler(prefix string, source fs.FS) http.Handler {
	fileServer := http.StripPrefix(prefix, http.FileServerFS(source))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")

		fileServer.ServeHTTP(w, r)
	})
}
