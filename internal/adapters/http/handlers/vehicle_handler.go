package handlers

import (
	"errors"

	"fleetease/internal/core/domain"
	"fleetease/internal/core/services"
	"fleetease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VehicleHandler handles fleet endpoints
type VehicleHandler struct {
	vehicleService *services.VehicleService
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicleService *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// List handles GET /vehicles
// @Summary List vehicles
// @Tags Vehicles
// @Produce json
// @Success 200 {array} models.Vehicle
// @Security BearerAuth
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	vehicles, err := h.vehicleService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list vehicles")
	}
	return response.OK(c, vehicles)
}

// Get handles GET /vehicles/:id
// @Summary Get a vehicle
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *fiber.Ctx) error {
	vehicle, err := h.vehicleService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return response.NotFound(c, "Vehicle not found")
		}
		return response.InternalServerError(c, "Failed to get vehicle")
	}
	return response.OK(c, vehicle)
}
