package workflow

import (
	"context"
	"strconv"
	"strings"

	"fleetease/internal/app/rest"
)

// Delivery form notices, in the order the checks run
const (
	msgKmRequired    = "Kilometre bilgisi zorunludur"
	msgPhotoRequired = "En az bir fotoğraf çekilmelidir"
	msgKvkkRequired  = "KVKK onayı zorunludur"

	msgDeliveryFailed = "Teslim işlemi başarısız"
)

// DeliveryForm holds the delivery screen's form fields. KmReading stays the
// raw text input until submit, when it is parsed to an integer.
type DeliveryForm struct {
	ReservationID string
	KmReading     string
	FuelLevel     FuelLevel
	Photos        []string
	Notes         string
	KvkkConsent   bool
}

// NewDeliveryForm creates an empty delivery form for a reservation.
// The fuel gauge starts at full.
func NewDeliveryForm(reservationID string) *DeliveryForm {
	return &DeliveryForm{
		ReservationID: reservationID,
		FuelLevel:     FuelFull,
	}
}

// Validate runs the required-field checks in screen order and returns
// the first failure
func (f *DeliveryForm) Validate() *ValidationError {
	if strings.TrimSpace(f.KmReading) == "" {
		return &ValidationError{Field: "km_reading", Message: msgKmRequired}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(f.KmReading)); err != nil {
		return &ValidationError{Field: "km_reading", Message: msgKmRequired}
	}
	if len(f.Photos) == 0 {
		return &ValidationError{Field: "photos", Message: msgPhotoRequired}
	}
	if !f.KvkkConsent {
		return &ValidationError{Field: "kvkk_consent", Message: msgKvkkRequired}
	}
	return nil
}

// request assembles the payload. Only called after Validate has passed.
func (f *DeliveryForm) request() *rest.DeliveryRequest {
	km, _ := strconv.Atoi(strings.TrimSpace(f.KmReading))
	return &rest.DeliveryRequest{
		ReservationID: f.ReservationID,
		KmReading:     km,
		FuelLevel:     int(f.FuelLevel),
		Photos:        f.Photos,
		Notes:         f.Notes,
		KvkkConsent:   f.KvkkConsent,
	}
}

// DeliverySubmission runs the delivery workflow for one form
type DeliverySubmission struct {
	machine
	form    *DeliveryForm
	service *rest.DeliveryService

	lastNotice string
}

// NewDeliverySubmission creates a submission workflow over form and service
func NewDeliverySubmission(form *DeliveryForm, service *rest.DeliveryService) *DeliverySubmission {
	return &DeliverySubmission{form: form, service: service}
}

// State returns the current workflow state
func (s *DeliverySubmission) State() FormState {
	return s.state
}

// LastNotice returns the message to show for the most recent failure
func (s *DeliverySubmission) LastNotice() string {
	return s.lastNotice
}

// Submit validates the form and performs the create call. A validation
// failure returns a *ValidationError without any network call; a server
// failure returns to Editing with all entered data retained.
func (s *DeliverySubmission) Submit(ctx context.Context) (*rest.Delivery, error) {
	if err := s.advance(StateValidating); err != nil {
		return nil, err
	}

	if verr := s.form.Validate(); verr != nil {
		s.lastNotice = verr.Message
		if err := s.advance(StateEditing); err != nil {
			return nil, err
		}
		return nil, verr
	}

	if err := s.advance(StateSubmitting); err != nil {
		return nil, err
	}

	delivery, err := s.service.Create(ctx, s.form.request())
	if err != nil {
		s.lastNotice = rest.Detail(err)
		if s.lastNotice == "" {
			s.lastNotice = msgDeliveryFailed
		}
		if aerr := s.advance(StateFailed); aerr != nil {
			return nil, aerr
		}
		if aerr := s.advance(StateEditing); aerr != nil {
			return nil, aerr
		}
		return nil, err
	}

	s.advance(StateSucceeded)
	return delivery, nil
}
