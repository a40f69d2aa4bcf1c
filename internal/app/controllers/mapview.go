package controllers

import (
	"context"

	"fleetease/internal/app/rest"
)

// MapMarker is a vehicle pinned on the map, the live position joined with
// the fleet record when one matches.
type MapMarker struct {
	Position rest.GPSVehicle
	Vehicle  *rest.Vehicle
}

// MapController backs the live map screen
type MapController struct {
	gps      *rest.GPSService
	vehicles *rest.VehicleService

	loading bool
	markers []MapMarker
}

// NewMapController creates a map controller
func NewMapController(gps *rest.GPSService, vehicles *rest.VehicleService) *MapController {
	return &MapController{gps: gps, vehicles: vehicles}
}

// Loading reports whether a fetch is in flight
func (c *MapController) Loading() bool {
	return c.loading
}

// Markers returns the vehicles to draw
func (c *MapController) Markers() []MapMarker {
	return c.markers
}

// Load fetches the positions and the fleet and joins them by vehicle id.
// A position with no matching fleet record is still drawn, just without
// the vehicle details.
func (c *MapController) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	positions, err := c.gps.Vehicles(ctx)
	if err != nil {
		return err
	}
	fleet, err := c.vehicles.List(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]*rest.Vehicle, len(fleet))
	for i := range fleet {
		byID[fleet[i].ID] = &fleet[i]
	}

	markers := make([]MapMarker, 0, len(positions))
	for _, p := range positions {
		markers = append(markers, MapMarker{Position: p, Vehicle: byID[p.VehicleID]})
	}
	c.markers = markers
	return nil
}

// Refresh re-fetches the positions
func (c *MapController) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}
