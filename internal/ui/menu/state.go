package menu

import "github.com/pkg/errors"

// State is the open/closed state of a mobile menu.
// The zero value is Closed.
type State int

const (
	Closed State = iota
	Open
)

var ErrInvalidState = errors.New("invalid menu state")

func (s State) String() string {
	if s == Open {
		return "open"
	}

	return "closed"
}

func ParseState(raw string) (State, error) {
	switch raw {
	case "", "closed":
		return Closed, nil
	case "open":
		return Open, nil
	default:
		return Closed, errors.Wrapf(ErrInvalidState, "unexpected state '%s'", raw)
	}
}

type EventType string

const (
	// EventOpen is emitted by the menu trigger.
	EventOpen EventType = "open"
	// EventClose is emitted by the explicit close control.
	EventClose EventType = "close"
	// EventDismiss is emitted by the background overlay.
	EventDismiss EventType = "dismiss"
	// EventSelect is emitted by a destination of the panel.
	EventSelect EventType = "select"
)

var ErrInvalidEvent = errors.New("invalid menu event")

func ParseEventType(raw string) (EventType, error) {
	switch t := EventType(raw); t {
	case EventOpen, EventClose, EventDismiss, EventSelect:
		return t, nil
	default:
		return "", errors.Wrapf(ErrInvalidEvent, "unexpected event '%s'", raw)
	}
}

// Event is a user activation of one of the menu controls.
// Destination is only meaningful for EventSelect.
type Event struct {
	Type        EventType
	Destination int
}

func OpenEvent() Event {
	return Event{Type: EventOpen}
}

func CloseEvent() Event {
	return Event{Type: EventClose}
}

func DismissEvent() Event {
	return Event{Type: EventDismiss}
}

func SelectEvent(destination int) Event {
	return Event{Type: EventSelect, Destination: destination}
}
