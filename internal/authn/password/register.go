package password

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/form"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type RegisterPageData struct {
	layout.Page
	Email        string
	Nickname     string
	ReferralCode string
	Message      string
	Errors       form.Errors
	LoginPath    string
}

func (h *Handler) newRegisterPageData(r *http.Request) RegisterPageData {
	return RegisterPageData{
		Page:      h.layout.Page(r, constants.TitleRegister),
		Errors:    form.Errors{},
		LoginPath: constants.RouteLogin,
	}
}

func (h *Handler) getRegisterPage(w http.ResponseWriter, r *http.Request) {
	if !h.opts.Registration {
		data := h.newRegisterPageData(r)
		data.Message = constants.MessageRegistrationClosed
		render(w, r, http.StatusNotFound, "register", data)
		return
	}

	if _, authenticated := authz.ContextUser(r.Context()); authenticated {
		http.Redirect(w, r, h.opts.PostLoginRedirect, http.StatusSeeOther)
		return
	}

	data := h.newRegisterPageData(r)
	data.ReferralCode = strings.TrimSpace(r.URL.Query().Get(constants.ReferralQueryParam))

	render(w, r, http.StatusOK, "register", data)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := h.newRegisterPageData(r)

	if !h.opts.Registration {
		data.Message = constants.MessageRegistrationClosed
		render(w, r, http.StatusNotFound, "register", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data.Email = strings.TrimSpace(r.PostFormValue("email"))
	data.Nickname = form.Text(r.PostFormValue("nickname"))
	data.ReferralCode = strings.TrimSpace(r.PostFormValue("referralCode"))

	if !h.allow(r) {
		data.Message = constants.MessageTooManyAttempts
		render(w, r, http.StatusTooManyRequests, "register", data)
		return
	}

	password := r.PostFormValue("password")
	passwordConfirm := r.PostFormValue("passwordConfirm")

	data.Errors.Email(constants.FieldEmail, data.Email)
	data.Errors.Length(constants.FieldNickname, data.Nickname, 0, constants.NicknameMaxLength)

	if data.Errors.Required(constants.FieldPassword, password) {
		data.Errors.Length(constants.FieldPassword, password, constants.PasswordMinLength, constants.PasswordMaxLength)
	}

	data.Errors.Match(constants.FieldPasswordConfirm, passwordConfirm, constants.FieldPassword, password)

	if !data.Errors.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "register", data)
		return
	}

	member, err := h.store.CreateMember(ctx, store.NewMember{
		Email:       data.Email,
		Nickname:    data.Nickname,
		Password:    password,
		SponsorCode: data.ReferralCode,
		Role:        constants.RoleMember,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			data.Errors.Add(constants.FieldEmail, constants.AlreadyRegistered(data.Email))
			render(w, r, http.StatusConflict, "register", data)
		case errors.Is(err, store.ErrNotFound):
			data.Errors.Add(constants.FieldReferralCode, constants.UnknownReferral(data.ReferralCode))
			render(w, r, http.StatusUnprocessableEntity, "register", data)
		default:
			slog.ErrorContext(ctx, "could not create member", log.Error(errors.WithStack(err)))
			data.Message = constants.MessageUnexpected
			render(w, r, http.StatusInternalServerError, "register", data)
		}

		return
	}

	h.opts.OnRegister()

	slog.InfoContext(ctx, "member registered", slog.Int64("memberID", member.ID), slog.Int64("sponsorID", member.SponsorID))

	if err := h.sessions.SetMemberID(w, r, member.ID); err != nil {
		slog.ErrorContext(ctx, "could not store session member", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.opts.PostLoginRedirect, http.StatusSeeOther)
}
