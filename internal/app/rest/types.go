package rest

import "time"

// User is the staff member record returned at login
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

// LoginResponse is the body of POST /auth/login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Vehicle is a fleet vehicle record
type Vehicle struct {
	ID           string  `json:"id"`
	Plate        string  `json:"plate"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Segment      string  `json:"segment"`
	Transmission string  `json:"transmission"`
	FuelType     string  `json:"fuel_type"`
	SeatCount    int     `json:"seat_count"`
	DoorCount    int     `json:"door_count"`
	DailyRate    float64 `json:"daily_rate"`
	Color        string  `json:"color"`
	Mileage      int     `json:"mileage"`
	Status       string  `json:"status"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// Customer is a rental customer, embedded in reservations
type Customer struct {
	ID           string `json:"id"`
	TCNo         string `json:"tc_no"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LicenseNo    string `json:"license_no,omitempty"`
	LicenseClass string `json:"license_class,omitempty"`
}

// Reservation is a rental reservation with vehicle and customer embedded
type Reservation struct {
	ID             string    `json:"id"`
	VehicleID      string    `json:"vehicle_id"`
	CustomerID     string    `json:"customer_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	PickupLocation string    `json:"pickup_location"`
	ReturnLocation string    `json:"return_location"`
	Status         string    `json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Vehicle        *Vehicle  `json:"vehicle,omitempty"`
	Customer       *Customer `json:"customer,omitempty"`
}

// DeliveryRequest is the payload of POST /deliveries
type DeliveryRequest struct {
	ReservationID string   `json:"reservation_id"`
	KmReading     int      `json:"km_reading"`
	FuelLevel     int      `json:"fuel_level"`
	Photos        []string `json:"photos"`
	Notes         string   `json:"notes,omitempty"`
	KvkkConsent   bool     `json:"kvkk_consent"`
}

// Delivery is the record returned by POST /deliveries
type Delivery struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	KmReading     int       `json:"km_reading"`
	FuelLevel     int       `json:"fuel_level"`
	Photos        []string  `json:"photos"`
	Notes         string    `json:"notes,omitempty"`
	KvkkConsent   bool      `json:"kvkk_consent"`
	DeliveredBy   string    `json:"delivered_by"`
	DeliveredAt   time.Time `json:"delivered_at"`
}

// ReturnRequest is the payload of POST /returns
type ReturnRequest struct {
	ReservationID string   `json:"reservation_id"`
	KmReading     int      `json:"km_reading"`
	FuelLevel     int      `json:"fuel_level"`
	Photos        []string `json:"photos"`
	DamagePhotos  []string `json:"damage_photos,omitempty"`
	DamageNotes   string   `json:"damage_notes,omitempty"`
	ExtraCharges  *float64 `json:"extra_charges,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// Return is the record returned by POST /returns
type Return struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	KmReading     int       `json:"km_reading"`
	FuelLevel     int       `json:"fuel_level"`
	Photos        []string  `json:"photos"`
	DamagePhotos  []string  `json:"damage_photos,omitempty"`
	DamageNotes   string    `json:"damage_notes,omitempty"`
	ExtraCharges  *float64  `json:"extra_charges,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ReturnedBy    string    `json:"returned_by"`
	ReturnedAt    time.Time `json:"returned_at"`
}

// GPSVehicle is a tracked vehicle position
type GPSVehicle struct {
	VehicleID  string    `json:"vehicle_id"`
	Plate      string    `json:"plate"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      float64   `json:"speed"`
	LastUpdate time.Time `json:"last_update"`
}
