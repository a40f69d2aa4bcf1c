package handlers

import (
	"fleetease/internal/core/services"
	"fleetease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GPSHandler handles vehicle tracking endpoints
type GPSHandler struct {
	gpsService *services.GPSService
}

// NewGPSHandler creates a new GPS handler
func NewGPSHandler(gpsService *services.GPSService) *GPSHandler {
	return &GPSHandler{gpsService: gpsService}
}

// ListVehicles handles GET /gps/vehicles
// @Summary List tracked vehicle positions
// @Tags GPS
// @Produce json
// @Success 200 {array} models.VehiclePosition
// @Security BearerAuth
// @Router /gps/vehicles [get]
func (h *GPSHandler) ListVehicles(c *fiber.Ctx) error {
	positions, err := h.gpsService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list vehicle positions")
	}
	return response.OK(c, positions)
}
