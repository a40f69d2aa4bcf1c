package services

import (
	"context"
	"math/rand"
	"time"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/adapters/persistence/repositories"
)

// GPSService serves vehicle positions for the map screen.
type GPSService struct {
	gpsRepo repositories.GPSRepository
}

// NewGPSService creates a new GPS service
func NewGPSService(gpsRepo repositories.GPSRepository) *GPSService {
	return &GPSService{gpsRepo: gpsRepo}
}

// List gets the latest position of every tracked vehicle
func (s *GPSService) List(ctx context.Context) ([]*models.VehiclePosition, error) {
	return s.gpsRepo.List(ctx)
}

// DriftPositions nudges every tracked vehicle so the map screen has moving
// data between real tracker pushes. Roughly ±100m per tick, speed 0-90 km/h.
func (s *GPSService) DriftPositions(ctx context.Context) error {
	positions, err := s.gpsRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, pos := range positions {
		pos.Latitude += (rand.Float64() - 0.5) * 0.002
		pos.Longitude += (rand.Float64() - 0.5) * 0.002
		pos.Speed = float64(rand.Intn(91))
		pos.LastUpdate = now
		if err := s.gpsRepo.Upsert(ctx, pos); err != nil {
			return err
		}
	}
	return nil
}
