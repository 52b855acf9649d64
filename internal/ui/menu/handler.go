package menu

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/upline/internal/ui"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

// Handler serves the mobile menu fragment. The client carries the state of its
// menu instance: every request rebuilds the instance, applies the event and
// renders the resulting state.
type Handler struct {
	prefix       string
	destinations []ui.Destination
	funcs        []OptionFunc
	mux          *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, destinations []ui.Destination, funcs ...OptionFunc) *Handler {
	h := &Handler{
		prefix:       prefix,
		destinations: destinations,
		funcs:        funcs,
		mux:          &http.ServeMux{},
	}

	h.mux.HandleFunc(fmt.Sprintf("GET %s", prefix), h.getFragment)
	h.mux.HandleFunc(fmt.Sprintf("POST %s/events", prefix), h.handleEvent)

	return h
}

func (h *Handler) getFragment(w http.ResponseWriter, r *http.Request) {
	state, err := ParseState(r.URL.Query().Get("state"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	m := Restore(state, h.destinations, nil, h.funcs...)

	h.render(w, r, m)
}

func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	state, err := ParseState(r.FormValue("state"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	eventType, err := ParseEventType(r.FormValue("event"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	event := Event{Type: eventType}

	if eventType == EventSelect {
		index, err := strconv.Atoi(r.FormValue("destination"))
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		event.Destination = index
	}

	var target string
	navigator := NavigatorFunc(func(path string) {
		target = path
	})

	m := Restore(state, h.destinations, navigator, h.funcs...)

	if err := m.Dispatch(event); err != nil {
		switch {
		case errors.Is(err, ErrUnknownDestination):
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		case errors.Is(err, ErrMenuClosed):
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
		default:
			slog.ErrorContext(ctx, "could not dispatch menu event", log.Error(errors.WithStack(err)))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if target != "" {
		if r.Header.Get("HX-Request") != "true" {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		// htmx ignores the body when HX-Location is set and loads the target
		// page, whose layout renders a fresh closed menu.
		w.Header().Set("HX-Location", target)
	}

	h.render(w, r, m)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, m *MobileMenu) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	if err := Render(w, m); err != nil {
		slog.ErrorContext(r.Context(), "could not render mobile menu", log.Error(errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
