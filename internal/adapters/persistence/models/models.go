package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Auth & Staff Tables
// ============================================================

// User represents users table (rental staff accounts)
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Role      string    `gorm:"size:20;default:'staff'" json:"role"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserResponse DTO - what the mobile app sees after login
type UserResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone,omitempty"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
		Phone:    u.Phone,
	}
}

// ============================================================
// Fleet Tables
// ============================================================

// Vehicle represents vehicles table
type Vehicle struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Plate        string    `gorm:"uniqueIndex;size:20;not null" json:"plate"`
	Brand        string    `gorm:"size:50;not null" json:"brand"`
	Model        string    `gorm:"size:50;not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	Segment      string    `gorm:"size:30" json:"segment"`
	Transmission string    `gorm:"size:20" json:"transmission"`
	FuelType     string    `gorm:"size:20" json:"fuel_type"`
	SeatCount    int       `gorm:"default:5" json:"seat_count"`
	DoorCount    int       `gorm:"default:4" json:"door_count"`
	DailyRate    float64   `gorm:"not null" json:"daily_rate"`
	Color        string    `gorm:"size:30" json:"color"`
	Mileage      int       `json:"mileage"`
	Status       string    `gorm:"size:20;default:'available';index" json:"status"`
	ImageURL     *string   `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Vehicle statuses
const (
	VehicleAvailable   = "available"
	VehicleReserved    = "reserved"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
)

// Customer represents customers table
type Customer struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	TCNo         string    `gorm:"uniqueIndex;size:11;not null" json:"tc_no"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Email        string    `gorm:"size:100;not null" json:"email"`
	Phone        string    `gorm:"size:30;not null" json:"phone"`
	Address      string    `gorm:"size:255" json:"address"`
	LicenseNo    *string   `gorm:"size:30" json:"license_no,omitempty"`
	LicenseClass *string   `gorm:"size:10" json:"license_class,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Reservation & Hand-over Tables
// ============================================================

// Reservation represents reservations table
type Reservation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	VehicleID      string    `gorm:"size:36;index;not null" json:"vehicle_id"`
	CustomerID     string    `gorm:"size:36;index;not null" json:"customer_id"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`
	PickupLocation string    `gorm:"size:100" json:"pickup_location"`
	ReturnLocation string    `gorm:"size:100" json:"return_location"`
	Status         string    `gorm:"size:20;default:'created';index" json:"status"`
	TotalAmount    float64   `json:"total_amount"`
	Notes          *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Vehicle        *Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Customer       *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Delivery represents deliveries table (vehicle hand-over to the customer)
type Delivery struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	ReservationID string      `gorm:"size:36;uniqueIndex;not null" json:"reservation_id"`
	KmReading     int         `gorm:"not null" json:"km_reading"`
	FuelLevel     int         `gorm:"not null" json:"fuel_level"`
	Photos        PhotoList   `gorm:"type:json" json:"photos"`
	Notes         *string     `gorm:"type:text" json:"notes,omitempty"`
	KvkkConsent   bool        `gorm:"not null" json:"kvkk_consent"`
	DeliveredBy   string      `gorm:"size:36;not null" json:"delivered_by"`
	DeliveredAt   time.Time   `gorm:"autoCreateTime" json:"delivered_at"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

func (d *Delivery) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Return represents returns table (vehicle hand-back from the customer)
type Return struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	ReservationID string      `gorm:"size:36;uniqueIndex;not null" json:"reservation_id"`
	KmReading     int         `gorm:"not null" json:"km_reading"`
	FuelLevel     int         `gorm:"not null" json:"fuel_level"`
	Photos        PhotoList   `gorm:"type:json" json:"photos"`
	DamagePhotos  PhotoList   `gorm:"type:json" json:"damage_photos,omitempty"`
	DamageNotes   *string     `gorm:"type:text" json:"damage_notes,omitempty"`
	ExtraCharges  *float64    `json:"extra_charges,omitempty"`
	Notes         *string     `gorm:"type:text" json:"notes,omitempty"`
	ReturnedBy    string      `gorm:"size:36;not null" json:"returned_by"`
	ReturnedAt    time.Time   `gorm:"autoCreateTime" json:"returned_at"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}

func (Return) TableName() string {
	return "returns"
}

func (r *Return) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// GPS Tables
// ============================================================

// VehiclePosition represents gps_positions table, one row per tracked vehicle
type VehiclePosition struct {
	VehicleID  string    `gorm:"primaryKey;size:36" json:"vehicle_id"`
	Plate      string    `gorm:"size:20;not null" json:"plate"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	Speed      float64   `json:"speed"`
	LastUpdate time.Time `json:"last_update"`
}

func (VehiclePosition) TableName() string {
	return "gps_positions"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Vehicle{},
		&Customer{},
		&Reservation{},
		&Delivery{},
		&Return{},
		&VehiclePosition{},
	)
}
