package domain

import "fmt"

// ReservationStatus is the server-driven lifecycle of a rental reservation.
// The mobile app never sets a status directly; it creates a Delivery or a
// Return record and the server advances the reservation.
type ReservationStatus string

const (
	StatusCreated   ReservationStatus = "created"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusDelivered ReservationStatus = "delivered"
	StatusReturned  ReservationStatus = "returned"
	StatusClosed    ReservationStatus = "closed"
)

// AllowTransition defines the allowed status transitions as a directed graph.
var AllowTransition = map[ReservationStatus][]ReservationStatus{
	StatusCreated:   {StatusConfirmed},
	StatusConfirmed: {StatusDelivered},
	StatusDelivered: {StatusReturned},
	StatusReturned:  {StatusClosed},
	// terminal: no transitions out of closed
	StatusClosed: {},
}

// CanTransition reports whether from -> to is an allowed status transition.
// Self-transitions are rejected: a reservation already in the target status
// must not be advanced again, even when no hand-over record exists for it.
func CanTransition(from, to ReservationStatus) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates a status change and returns the new status.
func Transition(from, to ReservationStatus) (ReservationStatus, error) {
	if !CanTransition(from, to) {
		return from, fmt.Errorf("invalid reservation status transition: %s -> %s", from, to)
	}
	return to, nil
}

// IsValidStatus reports whether s is one of the known reservation statuses.
func IsValidStatus(s string) bool {
	switch ReservationStatus(s) {
	case StatusCreated, StatusConfirmed, StatusDelivered, StatusReturned, StatusClosed:
		return true
	}
	return false
}
