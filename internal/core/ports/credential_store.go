package ports

import "context"

// CredentialStore persists session credentials across process restarts.
// Get returns "" with a nil error when the key is unset.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
