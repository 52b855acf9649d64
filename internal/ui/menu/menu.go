package menu

import (
	"slices"

	"github.com/bornholm/upline/internal/ui"
	"github.com/pkg/errors"
)

var (
	ErrUnknownDestination = errors.New("unknown destination")
	ErrMenuClosed         = errors.New("menu is closed")
)

// Navigator performs the client-side route transition to a destination.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

// Navigate implements Navigator.
func (fn NavigatorFunc) Navigate(path string) {
	fn(path)
}

var _ Navigator = NavigatorFunc(nil)

// MobileMenu is the narrow viewport navigation drawer.
// An instance is not safe for concurrent use: its state belongs to a single
// rendering of the page and every event is applied synchronously.
type MobileMenu struct {
	state        State
	destinations []ui.Destination
	navigator    Navigator
	opts         *Options
}

func New(destinations []ui.Destination, navigator Navigator, funcs ...OptionFunc) *MobileMenu {
	if navigator == nil {
		navigator = NavigatorFunc(func(string) {})
	}

	return &MobileMenu{
		state:        Closed,
		destinations: slices.Clone(destinations),
		navigator:    navigator,
		opts:         NewOptions(funcs...),
	}
}

// Restore returns a menu instance in the given state, used when the state
// is carried by the client between two requests.
func Restore(state State, destinations []ui.Destination, navigator Navigator, funcs ...OptionFunc) *MobileMenu {
	m := New(destinations, navigator, funcs...)
	if state == Open {
		m.state = Open
	}

	return m
}

func (m *MobileMenu) State() State {
	return m.state
}

func (m *MobileMenu) IsOpen() bool {
	return m.state == Open
}

func (m *MobileMenu) Destinations() []ui.Destination {
	return slices.Clone(m.destinations)
}

// Open shows the overlay and the panel. Opening an open menu changes nothing.
func (m *MobileMenu) Open() {
	m.transition(EventOpen, Open)
}

// Close hides the overlay and the panel.
func (m *MobileMenu) Close() {
	m.transition(EventClose, Closed)
}

// DismissOverlay handles an activation of the background overlay.
func (m *MobileMenu) DismissOverlay() {
	if m.state == Closed {
		// A closed overlay does not receive input
		m.opts.OnTransition(EventDismiss, Closed, Closed)
		return
	}

	m.transition(EventDismiss, Closed)
}

// Select closes the menu then navigates to the destination at the given index.
// The state is Closed before the navigator is invoked.
func (m *MobileMenu) Select(index int) error {
	if index < 0 || index >= len(m.destinations) {
		return errors.Wrapf(ErrUnknownDestination, "no destination at index %d", index)
	}

	if m.state != Open {
		return errors.Wrapf(ErrMenuClosed, "could not select destination '%s'", m.destinations[index].Path)
	}

	path := m.destinations[index].Path

	m.transition(EventSelect, Closed)

	m.navigator.Navigate(path)
	m.opts.OnNavigate(path)

	return nil
}

// SelectPath selects the first destination targeting the given path.
func (m *MobileMenu) SelectPath(path string) error {
	index := slices.IndexFunc(m.destinations, func(d ui.Destination) bool {
		return d.Path == path
	})
	if index == -1 {
		return errors.Wrapf(ErrUnknownDestination, "no destination for path '%s'", path)
	}

	return errors.WithStack(m.Select(index))
}

// Dispatch applies the given event to the menu.
func (m *MobileMenu) Dispatch(event Event) error {
	switch event.Type {
	case EventOpen:
		m.Open()
	case EventClose:
		m.Close()
	case EventDismiss:
		m.DismissOverlay()
	case EventSelect:
		if err := m.Select(event.Destination); err != nil {
			return errors.WithStack(err)
		}
	default:
		return errors.Wrapf(ErrInvalidEvent, "unexpected event '%s'", event.Type)
	}

	return nil
}

func (m *MobileMenu) transition(event EventType, to State) {
	from := m.state
	m.state = to
	m.opts.OnTransition(event, from, to)
}
