package ui

import (
	"github.com/bornholm/upline/internal/constants"
	"github.com/pkg/errors"
)

// Destination is a navigable route exposed by the navigation controls.
type Destination struct {
	Path            string
	Label           string
	IsPrimaryAction bool
}

var (
	ErrNoDestination     = errors.New("no destination")
	ErrInvalidPath       = errors.New("invalid destination path")
	ErrUnknownRoute      = errors.New("unknown destination route")
	ErrPrimaryActionRule = errors.New("exactly one destination must be the primary action")
)

var DestinationLogin = Destination{
	Path:            constants.RouteLogin,
	Label:           constants.LabelLogin,
	IsPrimaryAction: true,
}

// DefaultDestinations returns the ordered navigation destinations of the site.
func DefaultDestinations() []Destination {
	return []Destination{
		{Path: constants.RouteHome, Label: constants.LabelHome},
		{Path: constants.RouteAbout, Label: constants.LabelAbout},
		{Path: constants.RoutePlan, Label: constants.LabelPlan},
		{Path: constants.RouteContact, Label: constants.LabelContact},
		DestinationLogin,
	}
}

// ValidateDestinations checks that every destination targets a known route
// and that exactly one of them is the primary action.
func ValidateDestinations(destinations []Destination, isKnownRoute func(path string) bool) error {
	if len(destinations) == 0 {
		return errors.WithStack(ErrNoDestination)
	}

	primaries := 0
	for idx, d := range destinations {
		if d.Path == "" || d.Path[0] != '/' {
			return errors.Wrapf(ErrInvalidPath, "destination #%d ('%s') has path '%s'", idx, d.Label, d.Path)
		}

		if isKnownRoute != nil && !isKnownRoute(d.Path) {
			return errors.Wrapf(ErrUnknownRoute, "destination #%d ('%s') targets '%s'", idx, d.Label, d.Path)
		}

		if d.IsPrimaryAction {
			primaries++
		}
	}

	if primaries != 1 {
		return errors.Wrapf(ErrPrimaryActionRule, "found %d primary actions", primaries)
	}

	return nil
}

// PrimaryDestination returns the primary action of the given destinations.
func PrimaryDestination(destinations []Destination) (Destination, bool) {
	for _, d := range destinations {
		if d.IsPrimaryAction {
			return d, true
		}
	}

	return Destination{}, false
}
