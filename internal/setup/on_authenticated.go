package setup

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/upline/internal/authn"
	"github.com/bornholm/upline/internal/authz"
	"github.com/bornholm/upline/internal/config"
	"github.com/bornholm/upline/internal/constants"
	"github.com/bornholm/upline/internal/store"
	"github.com/pkg/errors"
)

// Connections are recorded at most once per period.
const connectedAtResolution = 5 * time.Minute

func NewOnAuthenticatedFromConfig(ctx context.Context, conf *config.Config) (authn.OnAuthenticatedFunc, error) {
	members, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	admins := make(map[string]struct{}, len(conf.Auth.Admins))
	for _, email := range conf.Auth.Admins {
		email := strings.ToLower(strings.TrimSpace(string(email)))
		if email == "" {
			continue
		}

		admins[email] = struct{}{}
	}

	return func(r *http.Request, user authn.User) (*http.Request, error) {
		ctx := r.Context()

		member, ok := user.(*store.Member)
		if !ok {
			return nil, errors.Errorf("unexpected user type '%T'", user)
		}

		role := member.Role
		if _, isAdmin := admins[strings.ToLower(member.Email)]; isAdmin {
			role = constants.RoleAdmin
		}

		if role != member.Role || time.Since(member.ConnectedAt) > connectedAtResolution {
			if err := members.TouchMember(ctx, member.ID, role); err != nil {
				return nil, errors.WithStack(err)
			}

			member.Role = role
			member.ConnectedAt = time.Now().UTC()
		}

		ctx = authz.WithContextUser(ctx, member)

		return r.WithContext(ctx), nil
	}, nil
}
