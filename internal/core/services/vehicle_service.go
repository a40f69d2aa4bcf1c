package services

import (
	"context"
	"errors"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/core/domain"

	"gorm.io/gorm"
)

// VehicleService handles fleet queries
type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(vehicleRepo repositories.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// List gets all vehicles
func (s *VehicleService) List(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// GetByID gets a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}
