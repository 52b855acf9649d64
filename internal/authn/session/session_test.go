package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type memberGetterFunc func(ctx context.Context, id int64) (*store.Member, error)

func (fn memberGetterFunc) GetMember(ctx context.Context, id int64) (*store.Member, error) {
	return fn(ctx, id)
}

func TestManager(t *testing.T) {
	manager := NewManager(sessions.NewCookieStore([]byte("01234567890123456789012345678901")), "test_session")

	res := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)

	if err := manager.SetMemberID(res, req, 42); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cookies := res.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected %d, got %d", e, g)
	}

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookies[0])

	memberID, err := manager.MemberID(req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(42), memberID; e != g {
		t.Errorf("memberID: expected %d, got %d", e, g)
	}

	members := memberGetterFunc(func(ctx context.Context, id int64) (*store.Member, error) {
		if id != 42 {
			return nil, errors.WithStack(store.ErrNotFound)
		}

		return &store.Member{ID: id, Role: constants.RoleMember}, nil
	})

	user, err := manager.Authenticator(members).Authenticate(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	member, ok := user.(*store.Member)
	if !ok {
		t.Fatalf("user: expected *store.Member, got %T", user)
	}

	if e, g := int64(42), member.ID; e != g {
		t.Errorf("member.ID: expected %d, got %d", e, g)
	}

	anonymous := httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	user, err = manager.Authenticator(members).Authenticate(httptest.NewRecorder(), anonymous)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user != nil {
		t.Errorf("user: expected nil, got %v", user)
	}

	if _, err := manager.MemberID(anonymous); !errors.Is(err, ErrNotFound) {
		t.Errorf("MemberID: expected ErrNotFound, got %+v", err)
	}

	res = httptest.NewRecorder()
	if err := manager.Clear(res, req); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	cleared := res.Result().Cookies()
	if e, g := 1, len(cleared); e != g {
		t.Fatalf("len(cleared): expected %d, got %d", e, g)
	}

	if g := cleared[0].MaxAge; g >= 0 {
		t.Errorf("cleared[0].MaxAge: expected negative value, got %d", g)
	}
}
