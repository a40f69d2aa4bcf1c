// Package nav holds the app's route names and the reservation routing rule.
package nav

// Route names, one per screen
const (
	RouteLogin             = "/login"
	RouteDashboard         = "/dashboard"
	RouteReservations      = "/reservations"
	RouteReservationDetail = "/reservations/detail"
	RouteDelivery          = "/reservations/delivery"
	RouteReturn            = "/reservations/return"
	RouteVehicles          = "/vehicles"
	RouteMap               = "/map"
	RouteProfile           = "/profile"
)

// RouteForReservation picks the screen for a tapped reservation. Confirmed
// reservations open the delivery form, delivered ones the return form.
// Every other status, known or not, opens the read-only detail screen.
func RouteForReservation(status string) string {
	switch status {
	case "confirmed":
		return RouteDelivery
	case "delivered":
		return RouteReturn
	default:
		return RouteReservationDetail
	}
}
