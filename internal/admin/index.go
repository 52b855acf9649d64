package admin

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

const recentMessages = 10

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := IndexTemplateData{
		Page:        h.layout.Page(r, "Administration"),
		MembersPath: h.prefix + "/members",
	}

	memberCount, err := h.store.CountMembers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count members", log.Error(errors.WithStack(err)))
	}

	data.MemberCount = memberCount

	messageCount, err := h.store.CountContactMessages(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count contact messages", log.Error(errors.WithStack(err)))
	}

	data.MessageCount = messageCount

	messages, err := h.store.ListContactMessages(ctx, recentMessages)
	if err != nil {
		slog.ErrorContext(ctx, "could not list contact messages", log.Error(errors.WithStack(err)))
	}

	data.Messages = messages

	h.render(w, r, "admin-index", data)
}
