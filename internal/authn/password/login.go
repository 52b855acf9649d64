package password

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/form"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type LoginPageData struct {
	layout.Page
	Email        string
	Next         string
	Message      string
	Errors       form.Errors
	Providers    []ExternalProvider
	Registration bool
	RegisterPath string
}

func (h *Handler) newLoginPageData(r *http.Request) LoginPageData {
	return LoginPageData{
		Page:         h.layout.Page(r, constants.TitleLogin),
		Next:         r.FormValue(constants.NextQueryParam),
		Errors:       form.Errors{},
		Providers:    h.opts.Providers,
		Registration: h.opts.Registration,
		RegisterPath: constants.RouteRegister,
	}
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, authenticated := authz.ContextUser(r.Context()); authenticated {
		http.Redirect(w, r, h.redirectTarget(r.URL.Query().Get(constants.NextQueryParam)), http.StatusSeeOther)
		return
	}

	render(w, r, http.StatusOK, "login", h.newLoginPageData(r))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data := h.newLoginPageData(r)
	data.Email = r.PostFormValue("email")

	if !h.allow(r) {
		data.Message = constants.MessageTooManyAttempts
		render(w, r, http.StatusTooManyRequests, "login", data)
		return
	}

	password := r.PostFormValue("password")

	data.Errors.Email(constants.FieldEmail, data.Email)
	data.Errors.Required(constants.FieldPassword, password)

	if !data.Errors.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "login", data)
		return
	}

	member, err := h.store.Authenticate(ctx, data.Email, password)
	if err != nil {
		h.opts.OnLogin(false)

		if errors.Is(err, store.ErrInvalidCredentials) {
			data.Message = constants.MessageInvalidCredentials
			render(w, r, http.StatusUnauthorized, "login", data)
			return
		}

		slog.ErrorContext(ctx, "could not authenticate member", log.Error(errors.WithStack(err)))
		data.Message = constants.MessageUnexpected
		render(w, r, http.StatusInternalServerError, "login", data)
		return
	}

	if err := h.sessions.SetMemberID(w, r, member.ID); err != nil {
		slog.ErrorContext(ctx, "could not store session member", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.opts.OnLogin(true)

	slog.InfoContext(ctx, "member logged in", slog.Int64("memberID", member.ID))

	http.Redirect(w, r, h.redirectTarget(data.Next), http.StatusSeeOther)
}
