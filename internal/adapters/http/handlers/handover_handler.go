package handlers

import (
	"errors"

	"fleetease/internal/adapters/http/middleware"
	"fleetease/internal/core/domain"
	"fleetease/internal/core/services"
	"fleetease/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HandoverHandler handles delivery and return endpoints
type HandoverHandler struct {
	handoverService *services.HandoverService
}

// NewHandoverHandler creates a new hand-over handler
func NewHandoverHandler(handoverService *services.HandoverService) *HandoverHandler {
	return &HandoverHandler{handoverService: handoverService}
}

// CreateDelivery handles POST /deliveries
// @Summary Record a vehicle delivery
// @Description Record a hand-over to the customer; advances the reservation to delivered
// @Tags Handover
// @Accept json
// @Produce json
// @Param body body services.DeliveryInput true "Delivery data"
// @Success 200 {object} models.Delivery
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /deliveries [post]
func (h *HandoverHandler) CreateDelivery(c *fiber.Ctx) error {
	var input services.DeliveryInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	delivery, err := h.handoverService.CreateDelivery(c.Context(), &input, middleware.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrReservationNotConfirmed):
			return response.BadRequest(c, "Reservation is not in confirmed status")
		case errors.Is(err, domain.ErrHandoverAlreadyDone):
			return response.Conflict(c, "Delivery already recorded for this reservation")
		default:
			return response.InternalServerError(c, "Failed to record delivery")
		}
	}

	return response.OK(c, delivery)
}

// CreateReturn handles POST /returns
// @Summary Record a vehicle return
// @Description Record a hand-back from the customer; advances the reservation to returned
// @Tags Handover
// @Accept json
// @Produce json
// @Param body body services.ReturnInput true "Return data"
// @Success 200 {object} models.Return
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /returns [post]
func (h *HandoverHandler) CreateReturn(c *fiber.Ctx) error {
	var input services.ReturnInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	ret, err := h.handoverService.CreateReturn(c.Context(), &input, middleware.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return response.NotFound(c, "Reservation not found")
		case errors.Is(err, domain.ErrReservationNotDelivered):
			return response.BadRequest(c, "Reservation is not in delivered status")
		case errors.Is(err, domain.ErrHandoverAlreadyDone):
			return response.Conflict(c, "Return already recorded for this reservation")
		default:
			return response.InternalServerError(c, "Failed to record return")
		}
	}

	return response.OK(c, ret)
}
