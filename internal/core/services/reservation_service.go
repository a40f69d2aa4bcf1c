package services

import (
	"context"
	"errors"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/core/domain"

	"gorm.io/gorm"
)

// ReservationService handles reservation queries
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
}

// NewReservationService creates a new reservation service
func NewReservationService(reservationRepo repositories.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

// List gets reservations, optionally filtered by status.
// Unknown status values yield an empty list rather than an error; the
// filter buttons in the app only send known values.
func (s *ReservationService) List(ctx context.Context, status string) ([]*models.Reservation, error) {
	return s.reservationRepo.List(ctx, status)
}

// GetByID gets a reservation by ID with vehicle and customer embedded
func (s *ReservationService) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}
