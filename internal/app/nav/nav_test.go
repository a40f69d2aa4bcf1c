package nav

import "testing"

func TestRouteForReservation(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"confirmed", RouteDelivery},
		{"delivered", RouteReturn},
		{"created", RouteReservationDetail},
		{"returned", RouteReservationDetail},
		{"closed", RouteReservationDetail},
		{"", RouteReservationDetail},
		{"bogus", RouteReservationDetail},
	}
	for _, c := range cases {
		if got := RouteForReservation(c.status); got != c.want {
			t.Fatalf("RouteForReservation(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}
