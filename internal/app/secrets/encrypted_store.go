package secrets

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	encryptedFileName = "secrets.bin"
	keyFileName       = "secrets.key"
)

var errCiphertextTooShort = errors.New("ciphertext too short")

// EncryptedStore keeps secrets in a file sealed with ChaCha20-Poly1305.
// The data key lives next to it with 0600 permissions, standing in for the
// OS keystore entry a device build would use.
type EncryptedStore struct {
	mu   sync.Mutex
	path string
	aead cipher.AEAD
}

// NewEncryptedStore creates an encrypted store rooted at dir, generating a
// data key on first use
func NewEncryptedStore(dir string) (*EncryptedStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	key, err := loadOrCreateKey(filepath.Join(dir, keyFileName))
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	return &EncryptedStore{
		path: filepath.Join(dir, encryptedFileName),
		aead: aead,
	}, nil
}

// Get returns the value for key, or an empty string when absent
func (s *EncryptedStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set stores value under key
func (s *EncryptedStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	return s.save(values)
}

// Delete removes key; deleting a missing key is not an error
func (s *EncryptedStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	delete(values, key)
	return s.save(values)
}

func (s *EncryptedStore) load() (map[string]string, error) {
	sealed, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	plain, err := s.open(sealed)
	if err != nil {
		// Undecryptable store (key rotated or file tampered): start over
		return map[string]string{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(plain, &values); err != nil {
		return map[string]string{}, nil
	}
	return values, nil
}

func (s *EncryptedStore) save(values map[string]string) error {
	plain, err := json.Marshal(values)
	if err != nil {
		return err
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}
	sealed := s.aead.Seal(nonce, nonce, plain, nil)
	return os.WriteFile(s.path, sealed, 0600)
}

func (s *EncryptedStore) open(sealed []byte) ([]byte, error) {
	if len(sealed) < chacha20poly1305.NonceSizeX {
		return nil, errCiphertextTooShort
	}
	nonce, ciphertext := sealed[:chacha20poly1305.NonceSizeX], sealed[chacha20poly1305.NonceSizeX:]
	return s.aead.Open(nil, nonce, ciphertext, nil)
}

func loadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil && len(key) == chacha20poly1305.KeySize {
		return key, nil
	}
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	key = make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, key, 0600); err != nil {
		return nil, err
	}
	return key, nil
}
