package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Fleet errors
var (
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
)

// Hand-over errors
var (
	ErrReservationNotConfirmed = errors.New("reservation is not in confirmed status")
	ErrReservationNotDelivered = errors.New("reservation is not in delivered status")
	ErrHandoverAlreadyDone     = errors.New("hand-over already recorded for reservation")
)
