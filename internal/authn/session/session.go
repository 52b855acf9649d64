package session

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/upline/internal/authn"
	"github.com/bornholm/upline/internal/store"
	"github.com/bornholm/upline/pkg/log"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const memberIDKey = "memberID"

var ErrNotFound = errors.New("session not found")

// Manager stores the identifier of the logged in member in a session cookie.
type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(store sessions.Store, name string) *Manager {
	return &Manager{
		store: store,
		name:  name,
	}
}

func (m *Manager) MemberID(r *http.Request) (int64, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	memberID, ok := sess.Values[memberIDKey].(int64)
	if !ok || memberID == 0 {
		return 0, errors.WithStack(ErrNotFound)
	}

	return memberID, nil
}

func (m *Manager) SetMemberID(w http.ResponseWriter, r *http.Request, memberID int64) error {
	// An undecodable cookie still yields a new session
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		return errors.WithStack(err)
	}

	sess.Values[memberIDKey] = memberID

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		return errors.WithStack(err)
	}

	delete(sess.Values, memberIDKey)
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type MemberGetter interface {
	GetMember(ctx context.Context, id int64) (*store.Member, error)
}

// Authenticator identifies the member stored in the session cookie.
// Requests without valid session are left anonymous.
func (m *Manager) Authenticator(members MemberGetter) authn.Authenticator {
	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		ctx := r.Context()

		memberID, err := m.MemberID(r)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				slog.WarnContext(ctx, "could not retrieve member from session", log.Error(errors.WithStack(err)))
			}

			return nil, nil
		}

		member, err := members.GetMember(ctx, memberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, nil
			}

			return nil, errors.WithStack(err)
		}

		return member, nil
	})
}
