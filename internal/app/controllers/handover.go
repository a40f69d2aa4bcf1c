package controllers

import (
	"context"

	"fleetease/internal/app/rest"
	"fleetease/internal/app/workflow"
)

// DeliveryController backs the delivery form screen. It loads the
// reservation being delivered, owns the form and runs the submission
// workflow. The submit button is disabled while Submitting reports true.
type DeliveryController struct {
	reservations *rest.ReservationService
	deliveries   *rest.DeliveryService

	loading     bool
	reservation *rest.Reservation
	form        *workflow.DeliveryForm
	submission  *workflow.DeliverySubmission
}

// NewDeliveryController creates a delivery controller for one reservation
func NewDeliveryController(reservations *rest.ReservationService, deliveries *rest.DeliveryService, reservationID string) *DeliveryController {
	form := workflow.NewDeliveryForm(reservationID)
	return &DeliveryController{
		reservations: reservations,
		deliveries:   deliveries,
		form:         form,
		submission:   workflow.NewDeliverySubmission(form, deliveries),
	}
}

// Loading reports whether the reservation fetch is in flight
func (c *DeliveryController) Loading() bool {
	return c.loading
}

// Reservation returns the reservation being delivered
func (c *DeliveryController) Reservation() *rest.Reservation {
	return c.reservation
}

// Form returns the editable form
func (c *DeliveryController) Form() *workflow.DeliveryForm {
	return c.form
}

// Submitting reports whether the create call is in flight
func (c *DeliveryController) Submitting() bool {
	return c.submission.State() == workflow.StateSubmitting
}

// Notice returns the message to show for the last failed submit
func (c *DeliveryController) Notice() string {
	return c.submission.LastNotice()
}

// Load fetches the reservation shown at the top of the form
func (c *DeliveryController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	r, err := c.reservations.Get(ctx, c.form.ReservationID)
	if err != nil {
		return err
	}
	c.reservation = r
	return nil
}

// Submit runs the workflow. On success the screen navigates back to the
// reservation list.
func (c *DeliveryController) Submit(ctx context.Context) (*rest.Delivery, error) {
	return c.submission.Submit(ctx)
}

// ReturnController backs the return form screen
type ReturnController struct {
	reservations *rest.ReservationService
	returns      *rest.ReturnService

	loading     bool
	reservation *rest.Reservation
	form        *workflow.ReturnForm
	submission  *workflow.ReturnSubmission
}

// NewReturnController creates a return controller for one reservation
func NewReturnController(reservations *rest.ReservationService, returns *rest.ReturnService, reservationID string) *ReturnController {
	form := workflow.NewReturnForm(reservationID)
	return &ReturnController{
		reservations: reservations,
		returns:      returns,
		form:         form,
		submission:   workflow.NewReturnSubmission(form, returns),
	}
}

// Loading reports whether the reservation fetch is in flight
func (c *ReturnController) Loading() bool {
	return c.loading
}

// Reservation returns the reservation being returned
func (c *ReturnController) Reservation() *rest.Reservation {
	return c.reservation
}

// Form returns the editable form
func (c *ReturnController) Form() *workflow.ReturnForm {
	return c.form
}

// Submitting reports whether the create call is in flight
func (c *ReturnController) Submitting() bool {
	return c.submission.State() == workflow.StateSubmitting
}

// Notice returns the message to show for the last failed submit
func (c *ReturnController) Notice() string {
	return c.submission.LastNotice()
}

// Load fetches the reservation shown at the top of the form
func (c *ReturnController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	r, err := c.reservations.Get(ctx, c.form.ReservationID)
	if err != nil {
		return err
	}
	c.reservation = r
	return nil
}

// Submit runs the workflow
func (c *ReturnController) Submit(ctx context.Context) (*rest.Return, error) {
	return c.submission.Submit(ctx)
}
