package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fleetease/internal/app/secrets"
)

// memStore is an in-memory secret store that counts deletions
type memStore struct {
	mu      sync.Mutex
	values  map[string]string
	deletes int
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.deletes++
	return nil
}

func TestClientAttachesBearerToken(t *testing.T) {
	store := newMemStore()
	store.Set(context.Background(), secrets.KeyAuthToken, "tok-abc")

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, store)
	if _, err := NewVehicleService(client).List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("expected Bearer tok-abc, got %q", gotAuth)
	}
}

func TestClientOmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newMemStore())
	if _, err := NewVehicleService(client).List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClientClearsTokenOn401Once(t *testing.T) {
	store := newMemStore()
	store.Set(context.Background(), secrets.KeyAuthToken, "stale")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token expired"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, store)
	_, err := NewVehicleService(client).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var ae *AuthenticationError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AuthenticationError, got %T", err)
	}
	if ae.Detail != "Token expired" {
		t.Fatalf("expected detail from server, got %q", ae.Detail)
	}

	if tok, _ := store.Get(context.Background(), secrets.KeyAuthToken); tok != "" {
		t.Fatalf("token not cleared, still %q", tok)
	}
	if store.deletes != 1 {
		t.Fatalf("expected exactly one delete, got %d", store.deletes)
	}
}

func TestClientServerErrorCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Reservation is not in confirmed status"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newMemStore())
	_, err := NewDeliveryService(client).Create(context.Background(), &DeliveryRequest{})
	if err == nil {
		t.Fatal("expected error")
	}

	var se *ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %T", err)
	}
	if se.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", se.StatusCode)
	}
	if Detail(err) != "Reservation is not in confirmed status" {
		t.Fatalf("unexpected detail %q", Detail(err))
	}
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, newMemStore())
	_, err := NewVehicleService(client).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NetworkError, got %T", err)
	}
	if Detail(err) != "" {
		t.Fatalf("network error has no server detail, got %q", Detail(err))
	}
}

func TestReservationListSendsStatusFilter(t *testing.T) {
	var gotStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, newMemStore())
	svc := NewReservationService(client)

	if _, err := svc.List(context.Background(), &ReservationFilter{Status: "confirmed"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotStatus != "confirmed" {
		t.Fatalf("expected status=confirmed, got %q", gotStatus)
	}

	gotStatus = "unset"
	if _, err := svc.List(context.Background(), nil); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotStatus != "" {
		t.Fatalf("expected no status param, got %q", gotStatus)
	}
}
