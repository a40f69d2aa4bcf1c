// Package secrets wraps the device's persistent key-value storage for the
// staff app. Two variants exist: an encrypted-at-rest store for platforms
// with a secure keystore primitive, and a plain file store for the rest.
package secrets

import "context"

// Keys persisted by the app
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

// Store is the storage capability the app selects once at startup.
// Get returns an empty string for a missing key; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// New selects the store variant for the given platform. "web" has no secure
// keystore and falls back to the plain persistent store.
func New(platform, dir string) (Store, error) {
	if platform == "web" {
		return NewFileStore(dir)
	}
	return NewEncryptedStore(dir)
}
