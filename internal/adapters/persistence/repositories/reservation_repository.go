package repositories

import (
	"context"

	"fleetease/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reservationRepository implements ReservationRepository interface
type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

// List gets reservations with vehicle and customer embedded, newest first.
// An empty status returns all reservations.
func (r *reservationRepository) List(ctx context.Context, status string) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	q := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Customer").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetByID gets a reservation by ID with vehicle and customer embedded
func (r *reservationRepository) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Customer").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus updates a reservation's status
func (r *reservationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListByStatus gets reservations in a given status without preloads,
// for background sweeps
func (r *reservationRepository) ListByStatus(ctx context.Context, status string) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// Count returns the number of reservations
func (r *reservationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).Count(&count).Error
	return count, err
}
