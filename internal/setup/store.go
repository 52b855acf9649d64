package setup

import (
	"context"

	"github.com/bornholm/upline/internal/config"
	"github.com/bornholm/upline/internal/store"
	"github.com/pkg/errors"
)

var NewStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	store := store.NewStore(string(conf.Store.Path))

	if err := store.HealthCheck(ctx); err != nil {
		return nil, errors.Wrapf(err, "could not open store '%s'", conf.Store.Path)
	}

	return store, nil
})
