package handlers

import (
	"errors"

	"fleetease/internal/core/domain"
	"fleetease/internal/core/services"
	"fleetease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *services.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// List handles GET /reservations
// @Summary List reservations
// @Description List reservations with vehicle and customer embedded, optionally filtered by status
// @Tags Reservations
// @Produce json
// @Param status query string false "Reservation status filter"
// @Success 200 {array} models.Reservation
// @Security BearerAuth
// @Router /reservations [get]
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	reservations, err := h.reservationService.List(c.Context(), status)
	if err != nil {
		return response.InternalServerError(c, "Failed to list reservations")
	}
	return response.OK(c, reservations)
}

// Get handles GET /reservations/:id
// @Summary Get a reservation
// @Tags Reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} models.Reservation
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *fiber.Ctx) error {
	reservation, err := h.reservationService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			return response.NotFound(c, "Reservation not found")
		}
		return response.InternalServerError(c, "Failed to get reservation")
	}
	return response.OK(c, reservation)
}
