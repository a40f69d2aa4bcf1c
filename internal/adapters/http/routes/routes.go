package routes

import (
	"time"

	"fleetease/internal/adapters/http/handlers"
	"fleetease/internal/adapters/http/middleware"
	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/config"
	"fleetease/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CronService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	vehicleRepo := repositories.NewVehicleRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	handoverRepo := repositories.NewHandoverRepository(db)
	gpsRepo := repositories.NewGPSRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	vehicleService := services.NewVehicleService(vehicleRepo)
	reservationService := services.NewReservationService(reservationRepo)
	handoverService := services.NewHandoverService(handoverRepo, reservationRepo, vehicleRepo)
	gpsService := services.NewGPSService(gpsRepo)
	cronService := services.NewCronService(gpsService, reservationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	handoverHandler := handlers.NewHandoverHandler(handoverService)
	gpsHandler := handlers.NewGPSHandler(gpsService)

	// Health check routes
	app.Get("/health", healthHandler.HealthCheck)

	// API group - the mobile app talks to /api
	api := app.Group("/api")
	api.Get("/", healthHandler.Root)

	// Auth (public, rate limited)
	api.Post("/auth/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Everything else requires a bearer token
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/vehicles", middleware.CacheControl(time.Minute), vehicleHandler.List)
	protected.Get("/vehicles/:id", vehicleHandler.Get)

	protected.Get("/reservations", reservationHandler.List)
	protected.Get("/reservations/:id", reservationHandler.Get)

	protected.Post("/deliveries", handoverHandler.CreateDelivery)
	protected.Post("/returns", handoverHandler.CreateReturn)

	protected.Get("/gps/vehicles", gpsHandler.ListVehicles)

	return cronService
}
