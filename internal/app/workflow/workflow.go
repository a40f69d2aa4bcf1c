// Package workflow implements the delivery and return submission flows:
// a small form state machine that validates required fields client-side,
// assembles the payload, and performs the single create call.
package workflow

import "fmt"

// FormState is the submission workflow state
type FormState int

const (
	// StateEditing is the resting state; the staff member is filling fields
	StateEditing FormState = iota
	// StateValidating runs the required-field checks
	StateValidating
	// StateSubmitting means the create call is in flight
	StateSubmitting
	// StateSucceeded is terminal; the screen navigates back
	StateSucceeded
	// StateFailed transitions straight back to Editing with data retained
	StateFailed
)

func (s FormState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// allowTransition defines the allowed workflow transitions
var allowTransition = map[FormState][]FormState{
	StateEditing:    {StateValidating},
	StateValidating: {StateSubmitting, StateEditing},
	StateSubmitting: {StateSucceeded, StateFailed},
	StateFailed:     {StateEditing},
	// terminal: a submitted record cannot be edited again
	StateSucceeded: {},
}

// machine tracks the workflow state for one form
type machine struct {
	state FormState
}

func (m *machine) advance(to FormState) error {
	for _, s := range allowTransition[m.state] {
		if s == to {
			m.state = to
			return nil
		}
	}
	return fmt.Errorf("invalid workflow transition: %s -> %s", m.state, to)
}

// ValidationError is a client-side missing-field failure. No network call
// is made; the screen shows Message as a blocking notice.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
