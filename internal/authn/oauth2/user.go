package oauth2

import (
	"strings"

	"github.com/markbates/goth"
	"github.com/pkg/errors"
)

var (
	errMissingEmail    = errors.New("user email missing")
	errMissingProvider = errors.New("user provider missing")
)

// User is the identity returned by a provider at the end of the flow.
type User struct {
	Subject  string
	Provider string

	Nickname string
	Email    string
}

func newUser(gothUser goth.User) (*User, error) {
	user := &User{
		Subject:  gothUser.UserID,
		Provider: gothUser.Provider,
		Nickname: gothUser.Name,
		Email:    strings.TrimSpace(gothUser.Email),
	}

	if rawPreferredUsername, exists := gothUser.RawData["preferred_username"]; exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok && preferredUsername != "" {
			user.Nickname = preferredUsername
		}
	}

	if user.Nickname == "" {
		user.Nickname = gothUser.NickName
	}

	if user.Email == "" {
		return nil, errors.WithStack(errMissingEmail)
	}

	if user.Provider == "" {
		return nil, errors.WithStack(errMissingProvider)
	}

	return user, nil
}
