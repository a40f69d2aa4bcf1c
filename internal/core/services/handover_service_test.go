package services

import (
	"context"
	"errors"
	"testing"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/core/domain"

	"gorm.io/gorm"
)

type fakeReservationRepo struct {
	reservations  map[string]*models.Reservation
	updatedStatus map[string]string
}

func newFakeReservationRepo(reservations ...*models.Reservation) *fakeReservationRepo {
	r := &fakeReservationRepo{
		reservations:  make(map[string]*models.Reservation),
		updatedStatus: make(map[string]string),
	}
	for _, res := range reservations {
		r.reservations[res.ID] = res
	}
	return r
}

func (r *fakeReservationRepo) List(_ context.Context, _ string) ([]*models.Reservation, error) {
	return nil, nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.updatedStatus[id] = status
	return nil
}

func (r *fakeReservationRepo) ListByStatus(_ context.Context, _ string) ([]*models.Reservation, error) {
	return nil, nil
}

func (r *fakeReservationRepo) Count(_ context.Context) (int64, error) { return 0, nil }

type fakeVehicleRepo struct {
	updatedStatus  map[string]string
	updatedMileage map[string]int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{
		updatedStatus:  make(map[string]string),
		updatedMileage: make(map[string]int),
	}
}

func (r *fakeVehicleRepo) List(_ context.Context) ([]*models.Vehicle, error)       { return nil, nil }
func (r *fakeVehicleRepo) GetByID(_ context.Context, _ string) (*models.Vehicle, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeVehicleRepo) Count(_ context.Context) (int64, error) { return 0, nil }

func (r *fakeVehicleRepo) UpdateStatusAndMileage(_ context.Context, id, status string, mileage int) error {
	r.updatedStatus[id] = status
	r.updatedMileage[id] = mileage
	return nil
}

type fakeHandoverRepo struct {
	deliveries map[string]bool
	returns    map[string]bool
	created    int
}

func newFakeHandoverRepo() *fakeHandoverRepo {
	return &fakeHandoverRepo{deliveries: make(map[string]bool), returns: make(map[string]bool)}
}

func (r *fakeHandoverRepo) CreateDelivery(_ context.Context, d *models.Delivery) error {
	r.deliveries[d.ReservationID] = true
	r.created++
	return nil
}

func (r *fakeHandoverRepo) CreateReturn(_ context.Context, ret *models.Return) error {
	r.returns[ret.ReservationID] = true
	r.created++
	return nil
}

func (r *fakeHandoverRepo) DeliveryExists(_ context.Context, reservationID string) (bool, error) {
	return r.deliveries[reservationID], nil
}

func (r *fakeHandoverRepo) ReturnExists(_ context.Context, reservationID string) (bool, error) {
	return r.returns[reservationID], nil
}

func TestCreateDeliveryAdvancesReservationAndVehicle(t *testing.T) {
	resRepo := newFakeReservationRepo(&models.Reservation{
		ID: "r1", VehicleID: "v1", Status: string(domain.StatusConfirmed),
	})
	vehRepo := newFakeVehicleRepo()
	handRepo := newFakeHandoverRepo()
	svc := NewHandoverService(handRepo, resRepo, vehRepo)

	delivery, err := svc.CreateDelivery(context.Background(), &DeliveryInput{
		ReservationID: "r1",
		KmReading:     15234,
		FuelLevel:     100,
		Photos:        models.PhotoList{"front.jpg"},
		KvkkConsent:   true,
	}, "staff-1")
	if err != nil {
		t.Fatalf("CreateDelivery: %v", err)
	}
	if delivery.DeliveredBy != "staff-1" {
		t.Fatalf("delivered_by = %q", delivery.DeliveredBy)
	}
	if resRepo.updatedStatus["r1"] != string(domain.StatusDelivered) {
		t.Fatalf("reservation status = %q, want delivered", resRepo.updatedStatus["r1"])
	}
	if vehRepo.updatedStatus["v1"] != models.VehicleRented {
		t.Fatalf("vehicle status = %q, want rented", vehRepo.updatedStatus["v1"])
	}
	if vehRepo.updatedMileage["v1"] != 15234 {
		t.Fatalf("vehicle mileage = %d, want 15234", vehRepo.updatedMileage["v1"])
	}
}

func TestCreateDeliveryRequiresConfirmedReservation(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusCreated, domain.StatusDelivered, domain.StatusReturned, domain.StatusClosed,
	} {
		resRepo := newFakeReservationRepo(&models.Reservation{
			ID: "r1", VehicleID: "v1", Status: string(status),
		})
		handRepo := newFakeHandoverRepo()
		svc := NewHandoverService(handRepo, resRepo, newFakeVehicleRepo())

		_, err := svc.CreateDelivery(context.Background(), &DeliveryInput{ReservationID: "r1"}, "staff-1")
		if !errors.Is(err, domain.ErrReservationNotConfirmed) {
			t.Fatalf("status %s: expected ErrReservationNotConfirmed, got %v", status, err)
		}
		if handRepo.created != 0 {
			t.Fatalf("status %s: no record must be written", status)
		}
	}
}

// A reservation seeded straight into delivered has no delivery row, so the
// duplicate check alone would let a second delivery through. The status gate
// must reject it regardless.
func TestCreateDeliveryRejectsDeliveredWithoutDeliveryRecord(t *testing.T) {
	resRepo := newFakeReservationRepo(&models.Reservation{
		ID: "r2", VehicleID: "v2", Status: string(domain.StatusDelivered),
	})
	vehRepo := newFakeVehicleRepo()
	handRepo := newFakeHandoverRepo()
	svc := NewHandoverService(handRepo, resRepo, vehRepo)

	_, err := svc.CreateDelivery(context.Background(), &DeliveryInput{
		ReservationID: "r2",
		KmReading:     99999,
	}, "staff-1")
	if !errors.Is(err, domain.ErrReservationNotConfirmed) {
		t.Fatalf("expected ErrReservationNotConfirmed, got %v", err)
	}
	if handRepo.created != 0 {
		t.Fatal("no delivery record must be written")
	}
	if _, ok := vehRepo.updatedStatus["v2"]; ok {
		t.Fatal("vehicle status must not change")
	}
	if _, ok := vehRepo.updatedMileage["v2"]; ok {
		t.Fatal("vehicle mileage must not be overwritten")
	}
}

func TestCreateDeliveryUnknownReservation(t *testing.T) {
	svc := NewHandoverService(newFakeHandoverRepo(), newFakeReservationRepo(), newFakeVehicleRepo())
	_, err := svc.CreateDelivery(context.Background(), &DeliveryInput{ReservationID: "nope"}, "staff-1")
	if !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestCreateDeliveryRejectsDuplicate(t *testing.T) {
	resRepo := newFakeReservationRepo(&models.Reservation{
		ID: "r1", VehicleID: "v1", Status: string(domain.StatusConfirmed),
	})
	handRepo := newFakeHandoverRepo()
	handRepo.deliveries["r1"] = true
	svc := NewHandoverService(handRepo, resRepo, newFakeVehicleRepo())

	_, err := svc.CreateDelivery(context.Background(), &DeliveryInput{ReservationID: "r1"}, "staff-1")
	if !errors.Is(err, domain.ErrHandoverAlreadyDone) {
		t.Fatalf("expected ErrHandoverAlreadyDone, got %v", err)
	}
}

func TestCreateReturnAdvancesReservationAndVehicle(t *testing.T) {
	resRepo := newFakeReservationRepo(&models.Reservation{
		ID: "r2", VehicleID: "v2", Status: string(domain.StatusDelivered),
	})
	vehRepo := newFakeVehicleRepo()
	svc := NewHandoverService(newFakeHandoverRepo(), resRepo, vehRepo)

	ret, err := svc.CreateReturn(context.Background(), &ReturnInput{
		ReservationID: "r2",
		KmReading:     16100,
		FuelLevel:     50,
		Photos:        models.PhotoList{"p.jpg"},
	}, "staff-2")
	if err != nil {
		t.Fatalf("CreateReturn: %v", err)
	}
	if ret.ReturnedBy != "staff-2" {
		t.Fatalf("returned_by = %q", ret.ReturnedBy)
	}
	if resRepo.updatedStatus["r2"] != string(domain.StatusReturned) {
		t.Fatalf("reservation status = %q, want returned", resRepo.updatedStatus["r2"])
	}
	if vehRepo.updatedStatus["v2"] != models.VehicleAvailable {
		t.Fatalf("vehicle status = %q, want available", vehRepo.updatedStatus["v2"])
	}
	if vehRepo.updatedMileage["v2"] != 16100 {
		t.Fatalf("vehicle mileage = %d, want 16100", vehRepo.updatedMileage["v2"])
	}
}

func TestCreateReturnRequiresDeliveredReservation(t *testing.T) {
	resRepo := newFakeReservationRepo(&models.Reservation{
		ID: "r2", VehicleID: "v2", Status: string(domain.StatusConfirmed),
	})
	svc := NewHandoverService(newFakeHandoverRepo(), resRepo, newFakeVehicleRepo())

	_, err := svc.CreateReturn(context.Background(), &ReturnInput{ReservationID: "r2"}, "staff-2")
	if !errors.Is(err, domain.ErrReservationNotDelivered) {
		t.Fatalf("expected ErrReservationNotDelivered, got %v", err)
	}
}
