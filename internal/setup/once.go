package setup

import (
	"context"
	"sync"

	"github.com/bornholm/upline/internal/config"
	"github.com/pkg/errors"
)

type createFromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes the result of fn for each configuration, so
// that every component built from the same configuration shares one instance.
func createFromConfigOnce[T any](fn createFromConfigFunc[T]) createFromConfigFunc[T] {
	var (
		mutex     sync.Mutex
		instances = map[*config.Config]T{}
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		mutex.Lock()
		defer mutex.Unlock()

		if instance, exists := instances[conf]; exists {
			return instance, nil
		}

		instance, err := fn(ctx, conf)
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		instances[conf] = instance

		return instance, nil
	}
}
