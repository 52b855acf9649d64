package setup

import (
	"context"
	"crypto/rand"
	"net/http"

	"github.com/bornholm/upline/internal/authn/session"
	"github.com/bornholm/upline/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var NewSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*sessions.CookieStore, error) {
	keyPairs := make([][]byte, 0)
	for _, k := range conf.HTTP.Session.Keys {
		if k == "" {
			continue
		}

		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 {
		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	}

	sessionStore := sessions.NewCookieStore(keyPairs...)

	if conf.HTTP.Session.Cookie.MaxAge != nil {
		sessionStore.MaxAge(int(*conf.HTTP.Session.Cookie.MaxAge))
	}

	sessionStore.Options.Path = string(conf.HTTP.Session.Cookie.Path)
	sessionStore.Options.HttpOnly = bool(conf.HTTP.Session.Cookie.HTTPOnly)
	sessionStore.Options.Secure = bool(conf.HTTP.Session.Cookie.Secure)
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})

var NewSessionManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Manager, error) {
	sessionStore, err := NewSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session.NewManager(sessionStore, string(conf.HTTP.Session.Name)), nil
})

func getRandomBytes(n int) ([]byte, error) {
	data := make([]byte, n)

	read, err := rand.Read(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if read != n {
		return nil, errors.Errorf("could not read %d bytes", n)
	}

	return data, nil
}
