package config

import (
	"log"
	"time"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		return err
	}
	if err := s.seedFleet(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the bootstrap superadmin account the field tablets
// ship configured with
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", "admin@fleetease.com").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash("admin123")
	if err != nil {
		return err
	}

	phone := "+90 555 123 4567"
	admin := &models.User{
		Email:    "admin@fleetease.com",
		Password: hashedPassword,
		FullName: "Super Admin",
		Role:     "superadmin",
		Phone:    &phone,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedFleet seeds the demo fleet: vehicles, customers, reservations and
// GPS positions. Safe to run repeatedly; existing rows are kept.
func (s *Seeder) seedFleet() error {
	vehicles := []models.Vehicle{
		{ID: "v1", Plate: "34 ABC 123", Brand: "Toyota", Model: "Corolla", Year: 2023, Segment: "Ekonomi", Transmission: "Otomatik", FuelType: "Benzin", SeatCount: 5, DoorCount: 4, DailyRate: 850, Color: "Beyaz", Mileage: 15000, Status: models.VehicleAvailable},
		{ID: "v2", Plate: "34 DEF 456", Brand: "Volkswagen", Model: "Passat", Year: 2022, Segment: "Orta", Transmission: "Otomatik", FuelType: "Dizel", SeatCount: 5, DoorCount: 4, DailyRate: 1200, Color: "Siyah", Mileage: 28000, Status: models.VehicleReserved},
		{ID: "v3", Plate: "34 GHI 789", Brand: "BMW", Model: "320i", Year: 2023, Segment: "Lüks", Transmission: "Otomatik", FuelType: "Benzin", SeatCount: 5, DoorCount: 4, DailyRate: 2500, Color: "Mavi", Mileage: 8000, Status: models.VehicleAvailable},
		{ID: "v4", Plate: "34 JKL 012", Brand: "Mercedes", Model: "C200", Year: 2022, Segment: "Lüks", Transmission: "Otomatik", FuelType: "Dizel", SeatCount: 5, DoorCount: 4, DailyRate: 2800, Color: "Gri", Mileage: 22000, Status: models.VehicleRented},
		{ID: "v5", Plate: "34 MNO 345", Brand: "Renault", Model: "Clio", Year: 2023, Segment: "Ekonomi", Transmission: "Manuel", FuelType: "Benzin", SeatCount: 5, DoorCount: 4, DailyRate: 650, Color: "Kırmızı", Mileage: 5000, Status: models.VehicleAvailable},
		{ID: "v6", Plate: "34 PRS 678", Brand: "Fiat", Model: "Egea", Year: 2022, Segment: "Ekonomi", Transmission: "Manuel", FuelType: "Dizel", SeatCount: 5, DoorCount: 4, DailyRate: 700, Color: "Beyaz", Mileage: 35000, Status: models.VehicleAvailable},
		{ID: "v7", Plate: "34 TUV 901", Brand: "Hyundai", Model: "Tucson", Year: 2023, Segment: "SUV", Transmission: "Otomatik", FuelType: "Hibrit", SeatCount: 5, DoorCount: 4, DailyRate: 1800, Color: "Yeşil", Mileage: 12000, Status: models.VehicleAvailable},
		{ID: "v8", Plate: "34 WXY 234", Brand: "Nissan", Model: "Qashqai", Year: 2022, Segment: "SUV", Transmission: "Otomatik", FuelType: "Benzin", SeatCount: 5, DoorCount: 4, DailyRate: 1500, Color: "Gri", Mileage: 18000, Status: models.VehicleMaintenance},
		{ID: "v9", Plate: "34 ZAB 567", Brand: "Audi", Model: "A4", Year: 2023, Segment: "Lüks", Transmission: "Otomatik", FuelType: "Benzin", SeatCount: 5, DoorCount: 4, DailyRate: 2200, Color: "Siyah", Mileage: 9000, Status: models.VehicleAvailable},
		{ID: "v10", Plate: "34 CDE 890", Brand: "Ford", Model: "Focus", Year: 2022, Segment: "Orta", Transmission: "Otomatik", FuelType: "Dizel", SeatCount: 5, DoorCount: 4, DailyRate: 900, Color: "Mavi", Mileage: 42000, Status: models.VehicleAvailable},
	}

	for i := range vehicles {
		var count int64
		s.db.Model(&models.Vehicle{}).Where("id = ?", vehicles[i].ID).Count(&count)
		if count == 0 {
			if err := s.db.Create(&vehicles[i]).Error; err != nil {
				return err
			}
		}
	}

	customers := []models.Customer{
		{ID: "c1", TCNo: "12345678901", FullName: "Ahmet Yılmaz", Email: "ahmet@email.com", Phone: "+90 532 111 2233", Address: "İstanbul, Kadıköy"},
		{ID: "c2", TCNo: "23456789012", FullName: "Mehmet Demir", Email: "mehmet@email.com", Phone: "+90 533 222 3344", Address: "İstanbul, Beşiktaş"},
		{ID: "c3", TCNo: "34567890123", FullName: "Ayşe Kaya", Email: "ayse@email.com", Phone: "+90 534 333 4455", Address: "İstanbul, Şişli"},
	}

	for i := range customers {
		var count int64
		s.db.Model(&models.Customer{}).Where("id = ?", customers[i].ID).Count(&count)
		if count == 0 {
			if err := s.db.Create(&customers[i]).Error; err != nil {
				return err
			}
		}
	}

	now := time.Now().UTC()
	reservations := []models.Reservation{
		{ID: "r1", VehicleID: "v1", CustomerID: "c1", StartDate: now, EndDate: now.AddDate(0, 0, 3), PickupLocation: "İstanbul Havalimanı", ReturnLocation: "İstanbul Havalimanı", Status: "confirmed", TotalAmount: 2550},
		{ID: "r2", VehicleID: "v4", CustomerID: "c2", StartDate: now.AddDate(0, 0, -2), EndDate: now.AddDate(0, 0, 1), PickupLocation: "Sabiha Gökçen", ReturnLocation: "Sabiha Gökçen", Status: "delivered", TotalAmount: 8400},
		{ID: "r3", VehicleID: "v2", CustomerID: "c3", StartDate: now.AddDate(0, 0, 1), EndDate: now.AddDate(0, 0, 5), PickupLocation: "Taksim Ofis", ReturnLocation: "Taksim Ofis", Status: "confirmed", TotalAmount: 4800},
	}

	for i := range reservations {
		var count int64
		s.db.Model(&models.Reservation{}).Where("id = ?", reservations[i].ID).Count(&count)
		if count == 0 {
			if err := s.db.Create(&reservations[i]).Error; err != nil {
				return err
			}
		}
	}

	// Tracked vehicles start around the İstanbul office
	positions := []models.VehiclePosition{
		{VehicleID: "v1", Plate: "34 ABC 123", Latitude: 41.0082, Longitude: 28.9784, Speed: 0, LastUpdate: now},
		{VehicleID: "v2", Plate: "34 DEF 456", Latitude: 41.0422, Longitude: 29.0094, Speed: 0, LastUpdate: now},
		{VehicleID: "v4", Plate: "34 JKL 012", Latitude: 40.8986, Longitude: 29.3092, Speed: 54, LastUpdate: now},
		{VehicleID: "v7", Plate: "34 TUV 901", Latitude: 41.0766, Longitude: 29.0573, Speed: 32, LastUpdate: now},
	}

	for i := range positions {
		var count int64
		s.db.Model(&models.VehiclePosition{}).Where("vehicle_id = ?", positions[i].VehicleID).Count(&count)
		if count == 0 {
			if err := s.db.Create(&positions[i]).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
