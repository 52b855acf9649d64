package authz

import (
	"context"

	"github.com/bornholm/upline/internal/authn"
	"github.com/bornholm/upline/internal/constants"
)

type User interface {
	authn.User
	UserRole() constants.Role
}

type contextKey string

const contextKeyUser contextKey = "authzUser"

func WithContextUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

func ContextUser(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(contextKeyUser).(User)
	return user, ok
}

// ContextRole returns the role of the request user, guest when anonymous.
func ContextRole(ctx context.Context) constants.Role {
	user, ok := ContextUser(ctx)
	if !ok {
		return constants.RoleGuest
	}

	return user.UserRole()
}
