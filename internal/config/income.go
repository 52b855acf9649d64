package config

import (
	"github.com/bornholm/upline/internal/constants"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Income struct {
	Levels []IncomeLevel `yaml:"levels"`
}

type IncomeLevel struct {
	Label   InterpolatedString `yaml:"label"`
	Percent InterpolatedFloat  `yaml:"percent"`
}

var ErrInvalidDistribution = errors.New("invalid income distribution")

func NewDefaultIncomeConfig() Income {
	defaults := constants.DefaultDistribution()

	levels := make([]IncomeLevel, 0, len(defaults))
	for _, l := range defaults {
		levels = append(levels, IncomeLevel{
			Label:   InterpolatedString(l.Label),
			Percent: InterpolatedFloat(l.Percent),
		})
	}

	return Income{
		Levels: levels,
	}
}

// Distribution returns the configured levels, ordered by depth.
func (i Income) Distribution() ([]constants.DistributionLevel, error) {
	levels := make([]constants.DistributionLevel, 0, len(i.Levels))

	for idx, l := range i.Levels {
		if l.Percent < 0 {
			return nil, errors.Wrapf(ErrInvalidDistribution, "level %d has a negative percentage", idx+1)
		}

		levels = append(levels, constants.DistributionLevel{
			Level:   idx + 1,
			Label:   string(l.Label),
			Percent: float64(l.Percent),
		})
	}

	if total := constants.TotalPercent(levels); total > constants.MaxDistributionPercent {
		return nil, errors.Wrapf(ErrInvalidDistribution, "levels sum up to %v%%", total)
	}

	return levels, nil
}

func NewIncomeConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":        []*yaml.Comment{yaml.HeadComment(" Income distribution plan, displayed on the plan page and the dashboard")},
		".levels": []*yaml.Comment{yaml.HeadComment(" Share of a purchase credited to each upline level, ordered from the direct sponsor", " The sum of every percentage must not exceed 100")},
	}
}
