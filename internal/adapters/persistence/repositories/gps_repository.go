package repositories

import (
	"context"

	"fleetease/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gpsRepository implements GPSRepository interface
type gpsRepository struct {
	db *gorm.DB
}

// NewGPSRepository creates a new GPS repository
func NewGPSRepository(db *gorm.DB) GPSRepository {
	return &gpsRepository{db: db}
}

// List gets the latest position of every tracked vehicle
func (r *gpsRepository) List(ctx context.Context) ([]*models.VehiclePosition, error) {
	var positions []*models.VehiclePosition
	err := r.db.WithContext(ctx).Order("plate").Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

// Upsert inserts or replaces a vehicle's position
func (r *gpsRepository) Upsert(ctx context.Context, pos *models.VehiclePosition) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "vehicle_id"}},
		UpdateAll: true,
	}).Create(pos).Error
}
