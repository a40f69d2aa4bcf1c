package controllers

import (
	"context"
	"strings"

	"fleetease/internal/app/rest"
)

// VehicleListController backs the fleet screen
type VehicleListController struct {
	vehicles *rest.VehicleService

	loading bool
	search  string
	all     []rest.Vehicle
}

// NewVehicleListController creates a vehicle list controller
func NewVehicleListController(vehicles *rest.VehicleService) *VehicleListController {
	return &VehicleListController{vehicles: vehicles}
}

// Loading reports whether a fetch is in flight
func (c *VehicleListController) Loading() bool {
	return c.loading
}

// SetSearch updates the search text
func (c *VehicleListController) SetSearch(text string) {
	c.search = text
}

// Load fetches the full fleet
func (c *VehicleListController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	list, err := c.vehicles.List(ctx)
	if err != nil {
		return err
	}
	c.all = list
	return nil
}

// Refresh re-fetches the fleet
func (c *VehicleListController) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// Items returns the fetched vehicles narrowed by the search text, matched
// case-insensitively over plate, brand and model.
func (c *VehicleListController) Items() []rest.Vehicle {
	query := strings.ToLower(strings.TrimSpace(c.search))
	if query == "" {
		return c.all
	}
	var out []rest.Vehicle
	for _, v := range c.all {
		if strings.Contains(strings.ToLower(v.Plate), query) ||
			strings.Contains(strings.ToLower(v.Brand), query) ||
			strings.Contains(strings.ToLower(v.Model), query) {
			out = append(out, v)
		}
	}
	return out
}
