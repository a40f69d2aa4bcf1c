package secrets

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, KeyAuthToken, "tok-123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, KeyAuthToken)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("expected tok-123, got %q", got)
	}

	if err := store.Delete(ctx, KeyAuthToken); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = store.Get(ctx, KeyAuthToken)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty value after delete, got %q", got)
	}
}

func TestFileStoreMissingKeyIsNotAnError(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	got, err := store.Get(context.Background(), "never_set")
	if err != nil {
		t.Fatalf("Get missing key: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty value for missing key, got %q", got)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set(ctx, KeyUserData, `{"email":"admin@fleetease.com"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, KeyUserData)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != `{"email":"admin@fleetease.com"}` {
		t.Fatalf("unexpected value after reopen: %q", got)
	}
}

func TestEncryptedStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewEncryptedStore(dir)
	if err != nil {
		t.Fatalf("NewEncryptedStore: %v", err)
	}
	if err := store.Set(ctx, KeyAuthToken, "secret-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewEncryptedStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, KeyAuthToken)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "secret-token" {
		t.Fatalf("expected secret-token, got %q", got)
	}
}

func TestEncryptedStoreCiphertextNotPlain(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewEncryptedStore(dir)
	if err != nil {
		t.Fatalf("NewEncryptedStore: %v", err)
	}
	if err := store.Set(ctx, KeyAuthToken, "visible-token-value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "secrets.bin"))
	if err != nil {
		t.Fatalf("read secrets file: %v", err)
	}
	if strings.Contains(string(raw), "visible-token-value") {
		t.Fatal("token stored in plaintext")
	}
}

func TestNewSelectsStoreByPlatform(t *testing.T) {
	web, err := New("web", t.TempDir())
	if err != nil {
		t.Fatalf("New web: %v", err)
	}
	if _, ok := web.(*FileStore); !ok {
		t.Fatalf("expected *FileStore for web, got %T", web)
	}

	mobile, err := New("mobile", t.TempDir())
	if err != nil {
		t.Fatalf("New mobile: %v", err)
	}
	if _, ok := mobile.(*EncryptedStore); !ok {
		t.Fatalf("expected *EncryptedStore for mobile, got %T", mobile)
	}
}
