package admin

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) serveMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	// One extra member tells whether a next page exists
	members, err := h.store.ListMembers(ctx, (page-1)*h.pageSize, h.pageSize+1)
	if err != nil {
		slog.ErrorContext(ctx, "could not list members", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	hasNext := len(members) > h.pageSize
	if hasNext {
		members = members[:h.pageSize]
	}

	data := MembersTemplateData{
		Page:       h.layout.Page(r, "Members"),
		Members:    members,
		Roles:      []constants.Role{constants.RoleGuest, constants.RoleMember, constants.RoleAdmin},
		Prefix:     h.prefix,
		PageNumber: page,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		HasNext:    hasNext,
	}

	if member, ok := authz.ContextUser(ctx); ok {
		if m, ok := member.(*store.Member); ok {
			data.CurrentID = m.ID
		}
	}

	h.render(w, r, "admin-members", data)
}

func (h *Handler) serveUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	role, err := constants.ParseRole(r.FormValue("role"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.store.UpdateMemberRole(ctx, id, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not update member role", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.InfoContext(ctx, "member role updated", slog.Int64("memberID", id), slog.String("role", string(role)))

	http.Redirect(w, r, fmt.Sprintf("%s/members", h.prefix), http.StatusSeeOther)
}
