package password

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		slog.ErrorContext(r.Context(), "could not clear session", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.opts.PostLogoutRedirect, http.StatusSeeOther)
}
