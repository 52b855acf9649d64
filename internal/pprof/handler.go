package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
	"strings"
)

// Handler exposes the runtime profiles and the expvar variables of the
// process under a prefix. Access is restricted by the access rules.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	mux := &http.ServeMux{}

	mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), pprof.Index)

	mux.HandleFunc(fmt.Sprintf("GET %s/cmdline", prefix), pprof.Cmdline)
	mux.HandleFunc(fmt.Sprintf("GET %s/profile", prefix), pprof.Profile)
	mux.HandleFunc(fmt.Sprintf("GET %s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("POST %s/symbol", prefix), pprof.Symbol)
	mux.HandleFunc(fmt.Sprintf("GET %s/trace", prefix), pprof.Trace)
	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), expvar.Handler())

	mux.HandleFunc(fmt.Sprintf("GET %s/{name}", prefix), func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
	})

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
