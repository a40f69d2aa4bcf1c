package repositories

import (
	"context"

	"fleetease/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// vehicleRepository implements VehicleRepository interface
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

// List gets all vehicles ordered by plate
func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := r.db.WithContext(ctx).Order("plate").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetByID gets a vehicle by ID
func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// UpdateStatusAndMileage updates a vehicle's status and mileage after a hand-over
func (r *vehicleRepository) UpdateStatusAndMileage(ctx context.Context, id, status string, mileage int) error {
	return r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "mileage": mileage}).Error
}

// Count returns the number of vehicles
func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vehicle{}).Count(&count).Error
	return count, err
}
