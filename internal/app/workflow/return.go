package workflow

import (
	"context"
	"strconv"
	"strings"

	"fleetease/internal/app/rest"
)

// Return form notices
const (
	msgVehiclePhotoRequired = "En az bir araç fotoğrafı çekilmelidir"
	msgDamagePhotoRequired  = "Hasar durumunda hasar fotoğrafı zorunludur"

	msgReturnFailed = "İade işlemi başarısız"
)

// ReturnForm holds the return screen's form fields. The damage branch is
// only sent when HasDamage is on.
type ReturnForm struct {
	ReservationID string
	KmReading     string
	FuelLevel     FuelLevel
	Photos        []string
	HasDamage     bool
	DamagePhotos  []string
	DamageNotes   string
	ExtraCharges  *float64
	Notes         string
}

// NewReturnForm creates an empty return form for a reservation
func NewReturnForm(reservationID string) *ReturnForm {
	return &ReturnForm{
		ReservationID: reservationID,
		FuelLevel:     FuelFull,
	}
}

// Validate runs the required-field checks in screen order and returns
// the first failure
func (f *ReturnForm) Validate() *ValidationError {
	if strings.TrimSpace(f.KmReading) == "" {
		return &ValidationError{Field: "km_reading", Message: msgKmRequired}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(f.KmReading)); err != nil {
		return &ValidationError{Field: "km_reading", Message: msgKmRequired}
	}
	if len(f.Photos) == 0 {
		return &ValidationError{Field: "photos", Message: msgVehiclePhotoRequired}
	}
	if f.HasDamage && len(f.DamagePhotos) == 0 {
		return &ValidationError{Field: "damage_photos", Message: msgDamagePhotoRequired}
	}
	return nil
}

// request assembles the payload. The damage fields are omitted entirely
// when the damage toggle is off, even if photos were taken before it was
// switched back.
func (f *ReturnForm) request() *rest.ReturnRequest {
	km, _ := strconv.Atoi(strings.TrimSpace(f.KmReading))
	req := &rest.ReturnRequest{
		ReservationID: f.ReservationID,
		KmReading:     km,
		FuelLevel:     int(f.FuelLevel),
		Photos:        f.Photos,
		ExtraCharges:  f.ExtraCharges,
		Notes:         f.Notes,
	}
	if f.HasDamage {
		req.DamagePhotos = f.DamagePhotos
		req.DamageNotes = f.DamageNotes
	}
	return req
}

// ReturnSubmission runs the return workflow for one form
type ReturnSubmission struct {
	machine
	form    *ReturnForm
	service *rest.ReturnService

	lastNotice string
}

// NewReturnSubmission creates a submission workflow over form and service
func NewReturnSubmission(form *ReturnForm, service *rest.ReturnService) *ReturnSubmission {
	return &ReturnSubmission{form: form, service: service}
}

// State returns the current workflow state
func (s *ReturnSubmission) State() FormState {
	return s.state
}

// LastNotice returns the message to show for the most recent failure
func (s *ReturnSubmission) LastNotice() string {
	return s.lastNotice
}

// Submit validates the form and performs the create call
func (s *ReturnSubmission) Submit(ctx context.Context) (*rest.Return, error) {
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

	ret, err := s.service.Create(ctx, s.form.request())
	if err != nil {
		s.lastNotice = rest.Detail(err)
		if s.lastNotice == "" {
			s.lastNotice = msgReturnFailed
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
	return ret, nil
}
