package mobilenav

import (
	"fmt"

	"github.com/nfrund/landing/internal/domain"
)

// State is the disclosure state of one widget instance. The zero value is Closed.
type State int

const (
	Closed State = iota
	Open
)

// String returns the wire form used in hx-vals and form posts.
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// ParseState reads the wire form back.
func ParseState(v string) (State, error) {
	switch v {
	case "closed":
		return Closed, nil
	case "open":
		return Open, nil
	default:
		return Closed, fmt.Errorf("%w: %q", domain.ErrInvalidState, v)
	}
}

// Toggle returns the opposite state.
func (s State) Toggle() State {
	if s == Open {
		return Closed
	}
	return Open
}

// Label is the accessible name of the control in this state.
func (s State) Label() string {
	if s == Open {
		return "Close menu"
	}
	return "Open menu"
}

// Expanded is the aria-expanded value for this state.
func (s State) Expanded() string {
	if s == Open {
		return "true"
	}
	return "false"
}
