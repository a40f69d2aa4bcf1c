package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetease/internal/app/rest"
	"fleetease/internal/app/secrets"

	"go.uber.org/zap"
)

func newLoginServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if body.Email != "admin@fleetease.com" || body.Password != "admin123" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(rest.LoginResponse{
			AccessToken: "tok-admin",
			TokenType:   "bearer",
			User: rest.User{
				ID:       "u1",
				Email:    "admin@fleetease.com",
				FullName: "Super Admin",
				Role:     "superadmin",
			},
		})
	}))
}

func newManager(t *testing.T, baseURL string) (*Manager, secrets.Store) {
	t.Helper()
	store, err := secrets.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	client := rest.NewClient(baseURL, store)
	return NewManager(store, rest.NewAuthService(client), zap.NewNop()), store
}

func TestHydrateWithEmptyStore(t *testing.T) {
	m, _ := newManager(t, "http://localhost:0")
	if m.State() != StateUnknown {
		t.Fatalf("expected unknown before hydrate, got %v", m.State())
	}

	m.Hydrate(context.Background())
	if m.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", m.State())
	}
	if m.User() != nil || m.Token() != "" {
		t.Fatal("expected no user or token")
	}
}

func TestLoginPersistsAndHydrateRestores(t *testing.T) {
	srv := newLoginServer(t)
	defer srv.Close()
	ctx := context.Background()

	m, store := newManager(t, srv.URL)
	if err := m.Login(ctx, "admin@fleetease.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if m.State() != StateAuthenticated {
		t.Fatalf("expected authenticated, got %v", m.State())
	}
	if m.Token() != "tok-admin" {
		t.Fatalf("unexpected token %q", m.Token())
	}
	if m.User() == nil || m.User().FullName != "Super Admin" {
		t.Fatalf("unexpected user %+v", m.User())
	}

	// a fresh manager over the same store restores the session
	client := rest.NewClient(srv.URL, store)
	fresh := NewManager(store, rest.NewAuthService(client), zap.NewNop())
	fresh.Hydrate(ctx)
	if fresh.State() != StateAuthenticated {
		t.Fatalf("expected restored session, got %v", fresh.State())
	}
	if fresh.User().Email != "admin@fleetease.com" {
		t.Fatalf("unexpected restored user %+v", fresh.User())
	}
	if fresh.Token() != "tok-admin" {
		t.Fatalf("unexpected restored token %q", fresh.Token())
	}
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	srv := newLoginServer(t)
	defer srv.Close()
	ctx := context.Background()

	m, store := newManager(t, srv.URL)
	err := m.Login(ctx, "admin@fleetease.com", "wrong")
	if err == nil {
		t.Fatal("expected login to fail")
	}
	if err.Error() != "Invalid email or password" {
		t.Fatalf("unexpected error message %q", err.Error())
	}
	if m.State() == StateAuthenticated {
		t.Fatal("state must not become authenticated")
	}
	if tok, _ := store.Get(ctx, secrets.KeyAuthToken); tok != "" {
		t.Fatalf("token must not be persisted, got %q", tok)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := newLoginServer(t)
	defer srv.Close()
	ctx := context.Background()

	m, store := newManager(t, srv.URL)
	if err := m.Login(ctx, "admin@fleetease.com", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	m.Logout(ctx)
	if m.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", m.State())
	}
	if m.User() != nil || m.Token() != "" {
		t.Fatal("expected user and token cleared")
	}
	if tok, _ := store.Get(ctx, secrets.KeyAuthToken); tok != "" {
		t.Fatalf("stored token not cleared, got %q", tok)
	}
	if data, _ := store.Get(ctx, secrets.KeyUserData); data != "" {
		t.Fatalf("stored user not cleared, got %q", data)
	}
}

func TestHydrateWithCorruptUserData(t *testing.T) {
	ctx := context.Background()
	store, err := secrets.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	store.Set(ctx, secrets.KeyAuthToken, "tok")
	store.Set(ctx, secrets.KeyUserData, "{not json")

	client := rest.NewClient("http://localhost:0", store)
	m := NewManager(store, rest.NewAuthService(client), zap.NewNop())
	m.Hydrate(ctx)
	if m.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated on corrupt user data, got %v", m.State())
	}
}

func TestHydrateWithTokenOnly(t *testing.T) {
	ctx := context.Background()
	store, err := secrets.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	store.Set(ctx, secrets.KeyAuthToken, "tok")

	client := rest.NewClient("http://localhost:0", store)
	m := NewManager(store, rest.NewAuthService(client), zap.NewNop())
	m.Hydrate(ctx)
	if m.State() != StateUnauthenticated {
		t.Fatalf("expected unauthenticated with token only, got %v", m.State())
	}
}
