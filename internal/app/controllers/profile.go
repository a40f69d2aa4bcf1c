package controllers

import (
	"context"

	"fleetease/internal/app/rest"
	"fleetease/internal/app/session"
)

// AppVersion is the version string shown at the bottom of the profile screen
const AppVersion = "Vega Operasyon v1.0.0"

// ProfileController backs the profile screen: the signed-in staff member
// plus the logout action.
type ProfileController struct {
	session *session.Manager
}

// NewProfileController creates a profile controller
func NewProfileController(sess *session.Manager) *ProfileController {
	return &ProfileController{session: sess}
}

// User returns the signed-in staff member, nil when the session is gone
func (c *ProfileController) User() *rest.User {
	return c.session.User()
}

// Version returns the app version string
func (c *ProfileController) Version() string {
	return AppVersion
}

// Logout clears the stored credentials and the in-memory session. It never
// fails; the screen navigates to login unconditionally afterwards.
func (c *ProfileController) Logout(ctx context.Context) {
	c.session.Logout(ctx)
}
