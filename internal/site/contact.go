package site

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/form"
	"github.com/bornholm/upline/internal/ui/layout"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

type ContactPageData struct {
	layout.Page
	Enabled      bool
	ContactEmail string
	Name         string
	Email        string
	Message      string
	Errors       form.Errors
	Notice       string
}

func (h *Handler) newContactPageData(r *http.Request) ContactPageData {
	return ContactPageData{
		Page:         h.layout.Page(r, constants.TitleContact),
		Enabled:      h.opts.Features.ContactForm,
		ContactEmail: h.opts.ContactEmail,
		Errors:       form.Errors{},
	}
}

func (h *Handler) getContactPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "contact", h.newContactPageData(r))
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := h.newContactPageData(r)

	if !data.Enabled {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data.Name = form.Text(r.PostFormValue("name"))
	data.Email = strings.TrimSpace(r.PostFormValue("email"))
	data.Message = form.Text(r.PostFormValue("message"))

	if data.Errors.Required(constants.FieldNickname, data.Name) {
		data.Errors.Length(constants.FieldNickname, data.Name, 0, constants.NicknameMaxLength)
	}

	data.Errors.Email(constants.FieldEmail, data.Email)

	if data.Errors.Required(constants.FieldMessage, data.Message) {
		data.Errors.Length(constants.FieldMessage, data.Message, 0, constants.MessageMaxLength)
	}

	if !data.Errors.Empty() {
		render(w, r, http.StatusUnprocessableEntity, "contact", data)
		return
	}

	id, err := h.store.SaveContactMessage(ctx, store.ContactMessage{
		Name:    data.Name,
		Email:   data.Email,
		Message: data.Message,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not save contact message", log.Error(errors.WithStack(err)))
		data.Notice = constants.MessageUnexpected
		render(w, r, http.StatusInternalServerError, "contact", data)
		return
	}

	h.opts.OnContact()

	slog.InfoContext(ctx, "contact message received", slog.Int64("messageID", id))

	sent := h.newContactPageData(r)
	sent.Notice = constants.MessageContactSent

	render(w, r, http.StatusOK, "contact", sent)
}
