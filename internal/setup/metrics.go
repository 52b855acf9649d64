package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/upline/internal/config"
	"github.com/bornholm/upline/internal/metrics"
	"github.com/bornholm/upline/pkg/log"
	"github.com/pkg/errors"
)

var NewMetricsFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*metrics.Metrics, error) {
	members, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	countMembers := func() float64 {
		count, err := members.CountMembers(context.Background())
		if err != nil {
			slog.Error("could not count members", log.Error(errors.WithStack(err)))
			return 0
		}

		return float64(count)
	}

	return metrics.New(countMembers), nil
})
