package rest

import (
	"context"
	"net/url"
)

// AuthService maps the authentication endpoint
type AuthService struct {
	client *Client
}

// NewAuthService creates an auth service over client
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login authenticates with email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := s.client.post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReservationFilter narrows the reservation list
type ReservationFilter struct {
	Status string
}

// ReservationService maps the reservation endpoints
type ReservationService struct {
	client *Client
}

// NewReservationService creates a reservation service over client
func NewReservationService(client *Client) *ReservationService {
	return &ReservationService{client: client}
}

// List fetches reservations, optionally filtered by status
func (s *ReservationService) List(ctx context.Context, filter *ReservationFilter) ([]Reservation, error) {
	query := url.Values{}
	if filter != nil && filter.Status != "" {
		query.Set("status", filter.Status)
	}
	var out []Reservation
	if err := s.client.get(ctx, "/reservations", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single reservation by id
func (s *ReservationService) Get(ctx context.Context, id string) (*Reservation, error) {
	var out Reservation
	if err := s.client.get(ctx, "/reservations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VehicleService maps the fleet endpoints
type VehicleService struct {
	client *Client
}

// NewVehicleService creates a vehicle service over client
func NewVehicleService(client *Client) *VehicleService {
	return &VehicleService{client: client}
}

// List fetches all vehicles
func (s *VehicleService) List(ctx context.Context) ([]Vehicle, error) {
	var out []Vehicle
	if err := s.client.get(ctx, "/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single vehicle by id
func (s *VehicleService) Get(ctx context.Context, id string) (*Vehicle, error) {
	var out Vehicle
	if err := s.client.get(ctx, "/vehicles/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeliveryService maps the delivery endpoint
type DeliveryService struct {
	client *Client
}

// NewDeliveryService creates a delivery service over client
func NewDeliveryService(client *Client) *DeliveryService {
	return &DeliveryService{client: client}
}

// Create records a vehicle delivery. The form controller validates the
// payload before this is called; the service does no validation of its own.
func (s *DeliveryService) Create(ctx context.Context, req *DeliveryRequest) (*Delivery, error) {
	var out Delivery
	if err := s.client.post(ctx, "/deliveries", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReturnService maps the return endpoint
type ReturnService struct {
	client *Client
}

// NewReturnService creates a return service over client
func NewReturnService(client *Client) *ReturnService {
	return &ReturnService{client: client}
}

// Create records a vehicle return
func (s *ReturnService) Create(ctx context.Context, req *ReturnRequest) (*Return, error) {
	var out Return
	if err := s.client.post(ctx, "/returns", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GPSService maps the tracking endpoint
type GPSService struct {
	client *Client
}

// NewGPSService creates a GPS service over client
func NewGPSService(client *Client) *GPSService {
	return &GPSService{client: client}
}

// Vehicles fetches the latest position of every tracked vehicle
func (s *GPSService) Vehicles(ctx context.Context) ([]GPSVehicle, error) {
	var out []GPSVehicle
	if err := s.client.get(ctx, "/gps/vehicles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
