// Package controllers holds the screen controllers of the staff app. Each
// controller fetches its data on load, keeps the view state (loading flag,
// filter, search text) and exposes Refresh to re-fetch. Controllers are not
// internally locked; the UI drives one at a time per screen.
package controllers

import (
	"context"
	"time"

	"fleetease/internal/app/rest"
)

// DashboardStats are the counters shown on the home screen
type DashboardStats struct {
	TotalReservations int
	Confirmed         int
	Delivered         int
	TodayDeliveries   int
	TodayReturns      int
}

// DashboardController backs the home screen
type DashboardController struct {
	reservations *rest.ReservationService

	loading bool
	stats   DashboardStats
	today   []rest.Reservation
}

// NewDashboardController creates a dashboard controller
func NewDashboardController(reservations *rest.ReservationService) *DashboardController {
	return &DashboardController{reservations: reservations}
}

// Loading reports whether a fetch is in flight
func (c *DashboardController) Loading() bool {
	return c.loading
}

// Stats returns the last computed counters
func (c *DashboardController) Stats() DashboardStats {
	return c.stats
}

// TodayWork returns the reservations due today, deliveries first
func (c *DashboardController) TodayWork() []rest.Reservation {
	return c.today
}

// Load fetches all reservations and computes the counters. A delivery is
// due today when a confirmed reservation starts today; a return is due when
// a delivered reservation ends today.
func (c *DashboardController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	list, err := c.reservations.List(ctx, nil)
	if err != nil {
		return err
	}

	now := time.Now()
	stats := DashboardStats{TotalReservations: len(list)}
	var today []rest.Reservation
	for _, r := range list {
		switch r.Status {
		case "confirmed":
			stats.Confirmed++
			if sameDay(r.StartDate, now) {
				stats.TodayDeliveries++
				today = append(today, r)
			}
		case "delivered":
			stats.Delivered++
			if sameDay(r.EndDate, now) {
				stats.TodayReturns++
				today = append(today, r)
			}
		}
	}

	c.stats = stats
	c.today = today
	return nil
}

// Refresh re-fetches the dashboard data
func (c *DashboardController) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
