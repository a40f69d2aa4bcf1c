// Package session owns the staff app's in-memory session: the current user
// and bearer token, hydrated from the secret store at startup and mutated
// only by login and logout.
package session

import (
	"context"
	"encoding/json"

	"fleetease/internal/app/rest"
	"fleetease/internal/app/secrets"

	"go.uber.org/zap"
)

// State is the session lifecycle state
type State int

const (
	// StateUnknown is the initial state, before Hydrate has run
	StateUnknown State = iota
	// StateAuthenticated means a token and user are present
	StateAuthenticated
	// StateUnauthenticated means no usable credentials are stored
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Manager owns the session. It is not internally locked: the UI serializes
// login/logout by disabling the triggering control while a call is in flight.
type Manager struct {
	store secrets.Store
	auth  *rest.AuthService
	log   *zap.Logger

	state State
	user  *rest.User
	token string
}

// NewManager creates a session manager over store and auth
func NewManager(store secrets.Store, auth *rest.AuthService, log *zap.Logger) *Manager {
	return &Manager{
		store: store,
		auth:  auth,
		log:   log,
		state: StateUnknown,
	}
}

// State returns the current session state
func (m *Manager) State() State {
	return m.state
}

// User returns the current user, or nil when not authenticated
func (m *Manager) User() *rest.User {
	return m.user
}

// Token returns the current bearer token, or "" when not authenticated
func (m *Manager) Token() string {
	return m.token
}

// Hydrate restores the session from the secret store. Run once at startup.
// A missing or unreadable stored user yields Unauthenticated; storage
// problems are logged, never raised.
func (m *Manager) Hydrate(ctx context.Context) {
	token, err := m.store.Get(ctx, secrets.KeyAuthToken)
	if err != nil {
		m.log.Warn("failed to read stored token", zap.Error(err))
		m.state = StateUnauthenticated
		return
	}
	userData, err := m.store.Get(ctx, secrets.KeyUserData)
	if err != nil {
		m.log.Warn("failed to read stored user", zap.Error(err))
		m.state = StateUnauthenticated
		return
	}

	if token == "" || userData == "" {
		m.state = StateUnauthenticated
		return
	}

	var user rest.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		m.log.Warn("stored user data is corrupt", zap.Error(err))
		m.state = StateUnauthenticated
		return
	}

	m.token = token
	m.user = &user
	m.state = StateAuthenticated
	m.log.Info("session restored", zap.String("email", user.Email))
}

// Login authenticates and persists the session. On failure the state and
// the secret store are left untouched and the error propagates for display.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	userData, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, secrets.KeyAuthToken, resp.AccessToken); err != nil {
		return err
	}
	if err := m.store.Set(ctx, secrets.KeyUserData, string(userData)); err != nil {
		return err
	}

	m.token = resp.AccessToken
	user := resp.User
	m.user = &user
	m.state = StateAuthenticated
	m.log.Info("logged in", zap.String("email", user.Email))
	return nil
}

// Logout clears the stored credentials and the in-memory session. Deletion
// is best effort: the session always ends Unauthenticated.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Delete(ctx, secrets.KeyAuthToken); err != nil {
		m.log.Warn("failed to delete stored token", zap.Error(err))
	}
	if err := m.store.Delete(ctx, secrets.KeyUserData); err != nil {
		m.log.Warn("failed to delete stored user", zap.Error(err))
	}

	m.token = ""
	m.user = nil
	m.state = StateUnauthenticated
	m.log.Info("logged out")
}
