package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetease/internal/app/rest"
)

// newDeliveryServer counts POSTs and captures the raw request body
func newDeliveryServer(t *testing.T, status int, response string) (*httptest.Server, *int, *[]byte) {
	t.Helper()
	var posts int
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		buf, _ := io.ReadAll(r.Body)
		body = buf
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &posts, &body
}

func newDeliverySubmission(t *testing.T, srv *httptest.Server, form *DeliveryForm) *DeliverySubmission {
	t.Helper()
	client := rest.NewClient(srv.URL, nopStore{})
	return NewDeliverySubmission(form, rest.NewDeliveryService(client))
}

type nopStore struct{}

func (nopStore) Get(context.Context, string) (string, error) { return "", nil }
func (nopStore) Set(context.Context, string, string) error   { return nil }
func (nopStore) Delete(context.Context, string) error        { return nil }

func TestDeliveryRejectsMissingKm(t *testing.T) {
	srv, posts, _ := newDeliveryServer(t, http.StatusOK, "{}")
	form := NewDeliveryForm("r1")
	form.Photos = []string{"p1.jpg"}
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	_, err := sub.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Kilometre bilgisi zorunludur" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if *posts != 0 {
		t.Fatalf("expected no network call, got %d", *posts)
	}
	if sub.State() != StateEditing {
		t.Fatalf("expected editing after rejection, got %v", sub.State())
	}
	if sub.LastNotice() != verr.Message {
		t.Fatalf("notice %q does not match rejection", sub.LastNotice())
	}
}

func TestDeliveryRejectsNonNumericKm(t *testing.T) {
	srv, posts, _ := newDeliveryServer(t, http.StatusOK, "{}")
	form := NewDeliveryForm("r1")
	form.KmReading = "abc"
	form.Photos = []string{"p1.jpg"}
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	if _, err := sub.Submit(context.Background()); err == nil {
		t.Fatal("expected rejection")
	}
	if *posts != 0 {
		t.Fatalf("expected no network call, got %d", *posts)
	}
}

func TestDeliveryRejectsMissingPhotos(t *testing.T) {
	srv, posts, _ := newDeliveryServer(t, http.StatusOK, "{}")
	form := NewDeliveryForm("r1")
	form.KmReading = "15234"
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	_, err := sub.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "En az bir fotoğraf çekilmelidir" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if *posts != 0 {
		t.Fatalf("expected no network call, got %d", *posts)
	}
}

func TestDeliveryRejectsMissingKvkk(t *testing.T) {
	srv, posts, _ := newDeliveryServer(t, http.StatusOK, "{}")
	form := NewDeliveryForm("r1")
	form.KmReading = "15234"
	form.Photos = []string{"p1.jpg"}
	sub := newDeliverySubmission(t, srv, form)

	_, err := sub.Submit(context.Background())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "KVKK onayı zorunludur" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if *posts != 0 {
		t.Fatalf("expected no network call, got %d", *posts)
	}
}

func TestDeliverySubmitPayload(t *testing.T) {
	srv, posts, body := newDeliveryServer(t, http.StatusCreated,
		`{"id":"d1","reservation_id":"r1","km_reading":15234}`)
	form := NewDeliveryForm("r1")
	form.KmReading = "15234"
	form.Photos = []string{"front.jpg", "back.jpg"}
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	delivery, err := sub.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if delivery.ID != "d1" {
		t.Fatalf("unexpected delivery %+v", delivery)
	}
	if *posts != 1 {
		t.Fatalf("expected one POST, got %d", *posts)
	}
	if sub.State() != StateSucceeded {
		t.Fatalf("expected succeeded, got %v", sub.State())
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(*body, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["reservation_id"] != "r1" {
		t.Fatalf("unexpected reservation_id %v", payload["reservation_id"])
	}
	if payload["km_reading"] != float64(15234) {
		t.Fatalf("km_reading must be the number 15234, got %v", payload["km_reading"])
	}
	if payload["fuel_level"] != float64(100) {
		t.Fatalf("fuel_level must default to 100, got %v", payload["fuel_level"])
	}
	if payload["kvkk_consent"] != true {
		t.Fatalf("kvkk_consent must be true, got %v", payload["kvkk_consent"])
	}
}

func TestDeliveryServerFailureRetainsFormData(t *testing.T) {
	srv, posts, _ := newDeliveryServer(t, http.StatusBadRequest,
		`{"detail":"Reservation is not in confirmed status"}`)
	form := NewDeliveryForm("r1")
	form.KmReading = "15234"
	form.Photos = []string{"front.jpg"}
	form.Notes = "anahtar teslim edildi"
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	_, err := sub.Submit(context.Background())
	if err == nil {
		t.Fatal("expected submit to fail")
	}
	// the server's error surfaces, not a workflow bookkeeping error
	var se *rest.ServerError
	if !errors.As(err, &se) {
		t.Fatalf("expected ServerError, got %T", err)
	}
	if *posts != 1 {
		t.Fatalf("expected one POST, got %d", *posts)
	}
	if sub.State() != StateEditing {
		t.Fatalf("expected return to editing, got %v", sub.State())
	}
	if sub.LastNotice() != "Reservation is not in confirmed status" {
		t.Fatalf("expected server detail as notice, got %q", sub.LastNotice())
	}
	// the staff member's inputs survive the failure
	if form.KmReading != "15234" || len(form.Photos) != 1 || form.Notes != "anahtar teslim edildi" {
		t.Fatalf("form data lost: %+v", form)
	}
}

func TestDeliveryGenericNoticeWithoutDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // transport failure, no detail available

	form := NewDeliveryForm("r1")
	form.KmReading = "100"
	form.Photos = []string{"p.jpg"}
	form.KvkkConsent = true
	client := rest.NewClient(srv.URL, nopStore{})
	sub := NewDeliverySubmission(form, rest.NewDeliveryService(client))

	if _, err := sub.Submit(context.Background()); err == nil {
		t.Fatal("expected submit to fail")
	}
	if sub.LastNotice() != "Teslim işlemi başarısız" {
		t.Fatalf("expected generic notice, got %q", sub.LastNotice())
	}
}

func TestDeliverySucceededIsTerminal(t *testing.T) {
	srv, _, _ := newDeliveryServer(t, http.StatusCreated, `{"id":"d1"}`)
	form := NewDeliveryForm("r1")
	form.KmReading = "100"
	form.Photos = []string{"p.jpg"}
	form.KvkkConsent = true
	sub := newDeliverySubmission(t, srv, form)

	if _, err := sub.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := sub.Submit(context.Background()); err == nil {
		t.Fatal("expected resubmit of a succeeded form to fail")
	}
}
