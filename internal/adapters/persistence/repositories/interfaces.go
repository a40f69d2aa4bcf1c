package repositories

import (
	"context"

	"fleetease/internal/adapters/persistence/models"
)

// UserRepository defines staff user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// VehicleRepository defines vehicle repository interface
type VehicleRepository interface {
	List(ctx context.Context) ([]*models.Vehicle, error)
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	UpdateStatusAndMileage(ctx context.Context, id, status string, mileage int) error
	Count(ctx context.Context) (int64, error)
}

// ReservationRepository defines reservation repository interface
type ReservationRepository interface {
	List(ctx context.Context, status string) ([]*models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByStatus(ctx context.Context, status string) ([]*models.Reservation, error)
	Count(ctx context.Context) (int64, error)
}

// HandoverRepository defines delivery/return repository interface
type HandoverRepository interface {
	CreateDelivery(ctx context.Context, delivery *models.Delivery) error
	CreateReturn(ctx context.Context, ret *models.Return) error
	DeliveryExists(ctx context.Context, reservationID string) (bool, error)
	ReturnExists(ctx context.Context, reservationID string) (bool, error)
}

// GPSRepository defines vehicle position repository interface
type GPSRepository interface {
	List(ctx context.Context) ([]*models.VehiclePosition, error)
	Upsert(ctx context.Context, pos *models.VehiclePosition) error
}
