package controllers

import (
	"context"
	"strings"

	"fleetease/internal/app/rest"
)

// ReservationListController backs the reservations screen: a status filter
// tab row plus a free-text search box.
type ReservationListController struct {
	reservations *rest.ReservationService

	loading      bool
	statusFilter string
	search       string
	all          []rest.Reservation
}

// NewReservationListController creates a reservation list controller
func NewReservationListController(reservations *rest.ReservationService) *ReservationListController {
	return &ReservationListController{reservations: reservations}
}

// Loading reports whether a fetch is in flight
func (c *ReservationListController) Loading() bool {
	return c.loading
}

// StatusFilter returns the active status tab, "" for all
func (c *ReservationListController) StatusFilter() string {
	return c.statusFilter
}

// SetStatusFilter switches the status tab. The next Load sends it as the
// query filter.
func (c *ReservationListController) SetStatusFilter(status string) {
	c.statusFilter = status
}

// SetSearch updates the search text. Search is applied locally over the
// fetched page, no re-fetch needed.
func (c *ReservationListController) SetSearch(text string) {
	c.search = text
}

// Load fetches the reservations for the active status filter
func (c *ReservationListController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	var filter *rest.ReservationFilter
	if c.statusFilter != "" {
		filter = &rest.ReservationFilter{Status: c.statusFilter}
	}
	list, err := c.reservations.List(ctx, filter)
	if err != nil {
		return err
	}
	c.all = list
	return nil
}

// Refresh re-fetches with the current filter
func (c *ReservationListController) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Items returns the fetched reservations narrowed by the search text.
// Matching is case-insensitive over customer full name, vehicle plate and
// vehicle brand.
func (c *ReservationListController) Items() []rest.Reservation {
	query := strings.ToLower(strings.TrimSpace(c.search))
	if query == "" {
		return c.all
	}
	var out []rest.Reservation
	for _, r := range c.all {
		if reservationMatches(&r, query) {
			out = append(out, r)
		}
	}
	return out
}

func reservationMatches(r *rest.Reservation, query string) bool {
	if r.Customer != nil && strings.Contains(strings.ToLower(r.Customer.FullName), query) {
		return true
	}
	if r.Vehicle != nil {
		if strings.Contains(strings.ToLower(r.Vehicle.Plate), query) {
			return true
		}
		if strings.Contains(strings.ToLower(r.Vehicle.Brand), query) {
			return true
		}
	}
	return false
}
