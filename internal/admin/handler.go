package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/internal/ui/layout"
)

type Store interface {
	CountMembers(ctx context.Context) (int64, error)
	CountContactMessages(ctx context.Context) (int64, error)
	ListMembers(ctx context.Context, offset, limit int) ([]*store.Member, error)
	ListContactMessages(ctx context.Context, limit int) ([]*store.ContactMessage, error)
	UpdateMemberRole(ctx context.Context, id int64, role constants.Role) error
}

type Handler struct {
	prefix   string
	store    Store
	layout   *layout.Layout
	pageSize int
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, store Store, layout *layout.Layout) *Handler {
	handler := &Handler{
		prefix:   prefix,
		store:    store,
		layout:   layout,
		pageSize: 50,
		mux:      &http.ServeMux{},
	}

	handler.mux.Handle(fmt.Sprintf("GET %s/{$}", prefix), requireAdmin(http.HandlerFunc(handler.serveIndex)))
	handler.mux.Handle(fmt.Sprintf("GET %s/members", prefix), requireAdmin(http.HandlerFunc(handler.serveMembers)))
	handler.mux.Handle(fmt.Sprintf("POST %s/members/{id}/role", prefix), requireAdmin(http.HandlerFunc(handler.serveUpdateRole)))

	return handler
}

var _ http.Handler = &Handler{}
