package services

import (
	"context"
	"errors"
	"log"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/core/domain"

	"gorm.io/gorm"
)

// HandoverService records vehicle deliveries and returns and advances the
// reservation lifecycle accordingly. This is the only place reservation and
// vehicle statuses change in response to staff actions.
type HandoverService struct {
	handoverRepo    repositories.HandoverRepository
	reservationRepo repositories.ReservationRepository
	vehicleRepo     repositories.VehicleRepository
}

// NewHandoverService creates a new hand-over service
func NewHandoverService(
	handoverRepo repositories.HandoverRepository,
	reservationRepo repositories.ReservationRepository,
	vehicleRepo repositories.VehicleRepository,
) *HandoverService {
	return &HandoverService{
		handoverRepo:    handoverRepo,
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
	}
}

// DeliveryInput represents the delivery payload sent by the app
type DeliveryInput struct {
	ReservationID string           `json:"reservation_id"`
	KmReading     int              `json:"km_reading"`
	FuelLevel     int              `json:"fuel_level"`
	Photos        models.PhotoList `json:"photos"`
	Notes         *string          `json:"notes,omitempty"`
	KvkkConsent   bool             `json:"kvkk_consent"`
}

// ReturnInput represents the return payload sent by the app
type ReturnInput struct {
	ReservationID string           `json:"reservation_id"`
	KmReading     int              `json:"km_reading"`
	FuelLevel     int              `json:"fuel_level"`
	Photos        models.PhotoList `json:"photos"`
	DamagePhotos  models.PhotoList `json:"damage_photos,omitempty"`
	DamageNotes   *string          `json:"damage_notes,omitempty"`
	ExtraCharges  *float64         `json:"extra_charges,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

// CreateDelivery records a vehicle hand-over to the customer.
// The reservation must be confirmed; on success it becomes delivered and the
// vehicle becomes rented with its mileage set to the reported reading.
func (s *HandoverService) CreateDelivery(ctx context.Context, input *DeliveryInput, staffID string) (*models.Delivery, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	if _, err := domain.Transition(domain.ReservationStatus(reservation.Status), domain.StatusDelivered); err != nil {
		return nil, domain.ErrReservationNotConfirmed
	}

	exists, err := s.handoverRepo.DeliveryExists(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrHandoverAlreadyDone
	}

	delivery := &models.Delivery{
		ReservationID: input.ReservationID,
		KmReading:     input.KmReading,
		FuelLevel:     input.FuelLevel,
		Photos:        input.Photos,
		Notes:         input.Notes,
		KvkkConsent:   input.KvkkConsent,
		DeliveredBy:   staffID,
	}

	if err := s.handoverRepo.CreateDelivery(ctx, delivery); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, string(domain.StatusDelivered)); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.UpdateStatusAndMileage(ctx, reservation.VehicleID, models.VehicleRented, input.KmReading); err != nil {
		return nil, err
	}

	log.Printf("✅ Delivery recorded for reservation %s by %s", reservation.ID, staffID)
	return delivery, nil
}

// CreateReturn records a vehicle hand-back from the customer.
// The reservation must be delivered; on success it becomes returned and the
// vehicle becomes available again.
func (s *HandoverService) CreateReturn(ctx context.Context, input *ReturnInput, staffID string) (*models.Return, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	if _, err := domain.Transition(domain.ReservationStatus(reservation.Status), domain.StatusReturned); err != nil {
		return nil, domain.ErrReservationNotDelivered
	}

	exists, err := s.handoverRepo.ReturnExists(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrHandoverAlreadyDone
	}

	ret := &models.Return{
		ReservationID: input.ReservationID,
		KmReading:     input.KmReading,
		FuelLevel:     input.FuelLevel,
		Photos:        input.Photos,
		DamagePhotos:  input.DamagePhotos,
		DamageNotes:   input.DamageNotes,
		ExtraCharges:  input.ExtraCharges,
		Notes:         input.Notes,
		ReturnedBy:    staffID,
	}

	if err := s.handoverRepo.CreateReturn(ctx, ret); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservation.ID, string(domain.StatusReturned)); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.UpdateStatusAndMileage(ctx, reservation.VehicleID, models.VehicleAvailable, input.KmReading); err != nil {
		return nil, err
	}

	log.Printf("✅ Return recorded for reservation %s by %s", reservation.ID, staffID)
	return ret, nil
}
