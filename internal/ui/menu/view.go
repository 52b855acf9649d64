package menu

import (
	"github.com/bornholm/upline/internal/constants"
)

// Control is a button of the menu carrying its own accessible name.
type Control struct {
	AriaLabel    string
	AriaExpanded bool
	Class        string
}

// Layer describes how the overlay or the panel must be rendered.
// A non interactive layer stays in the document for the transition animation
// but must neither intercept pointer input nor receive keyboard focus.
type Layer struct {
	Interactive bool
	AriaHidden  bool
	Inert       bool
	TabIndex    int
	Class       string
}

type Item struct {
	Index    int
	Path     string
	Label    string
	Primary  bool
	TabIndex int
}

// View is the rendering contract of a menu in a given state.
type View struct {
	ID       string
	Class    string
	State    string
	IsOpen   bool
	Endpoint string
	Trigger  Control
	Close    Control
	Overlay  Layer
	Panel    Layer
	Items    []Item
}

const (
	DefaultID       = "mobile-menu"
	DefaultEndpoint = constants.RouteMenu + "/events"
)

func (m *MobileMenu) View() View {
	open := m.state == Open

	layer := func(base string) Layer {
		if open {
			return Layer{
				Interactive: true,
				AriaHidden:  false,
				Inert:       false,
				TabIndex:    0,
				Class:       base + " is-open",
			}
		}

		return Layer{
			Interactive: false,
			AriaHidden:  true,
			Inert:       true,
			TabIndex:    -1,
			Class:       base + " is-closed",
		}
	}

	panel := layer("mobile-menu-panel")

	items := make([]Item, 0, len(m.destinations))
	for idx, d := range m.destinations {
		items = append(items, Item{
			Index:    idx,
			Path:     d.Path,
			Label:    d.Label,
			Primary:  d.IsPrimaryAction,
			TabIndex: panel.TabIndex,
		})
	}

	return View{
		ID:       DefaultID,
		Class:    "mobile-menu " + constants.ClassNarrowOnly,
		State:    m.state.String(),
		IsOpen:   open,
		Endpoint: DefaultEndpoint,
		Trigger: Control{
			AriaLabel:    constants.AriaOpenMobileMenu,
			AriaExpanded: open,
			Class:        "mobile-menu-trigger",
		},
		Close: Control{
			AriaLabel:    constants.AriaCloseMobileMenu,
			AriaExpanded: open,
			Class:        "mobile-menu-close",
		},
		Overlay: layer("mobile-menu-overlay"),
		Panel:   panel,
		Items:   items,
	}
}
