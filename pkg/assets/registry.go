package assets

import (
	"io/fs"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

type Type string

type CreateSourceFunc func(options any) (fs.FS, error)

var (
	ErrNotRegistered = errors.New("assets source type not registered")

	registryMutex sync.RWMutex
	registry      = map[Type]CreateSourceFunc{}
)

func Register(sourceType Type, fn CreateSourceFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	registry[sourceType] = fn
}

func Registered() []Type {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	slices.Sort(types)

	return types
}

// New creates the assets source of the given type from its raw options.
func New(sourceType Type, options any) (fs.FS, error) {
	registryMutex.RLock()
	create, exists := registry[sourceType]
	registryMutex.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrNotRegistered, "unknown type '%s'", sourceType)
	}

	source, err := create(options)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' assets source", sourceType)
	}

	return source, nil
}
