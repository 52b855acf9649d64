package local

import (
	"io/fs"
	"os"

	"github.com/bornholm/upline/pkg/assets"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type assets.Type = "local"

func init() {
	assets.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir"`
}

func CreateSourceFromOptions(options any) (fs.FS, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets options", Type)
	}

	if opts.Dir == "" {
		return nil, errors.Errorf("'%s' assets source requires a 'dir' option", Type)
	}

	if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
		return nil, errors.WithStack(err)
	}

	return os.DirFS(opts.Dir), nil
}
