package repositories

import (
	"context"

	"fleetease/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// handoverRepository implements HandoverRepository interface
type handoverRepository struct {
	db *gorm.DB
}

// NewHandoverRepository creates a new hand-over repository
func NewHandoverRepository(db *gorm.DB) HandoverRepository {
	return &handoverRepository{db: db}
}

// CreateDelivery creates a new delivery record
func (r *handoverRepository) CreateDelivery(ctx context.Context, delivery *models.Delivery) error {
	return r.db.WithContext(ctx).Create(delivery).Error
}

// CreateReturn creates a new return record
func (r *handoverRepository) CreateReturn(ctx context.Context, ret *models.Return) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

// DeliveryExists checks whether a delivery was already recorded for a reservation
func (r *handoverRepository) DeliveryExists(ctx context.Context, reservationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Delivery{}).
		Where("reservation_id = ?", reservationID).Count(&count).Error
	return count > 0, err
}

// ReturnExists checks whether a return was already recorded for a reservation
func (r *handoverRepository) ReturnExists(ctx context.Context, reservationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Return{}).
		Where("reservation_id = ?", reservationID).Count(&count).Error
	return count > 0, err
}
