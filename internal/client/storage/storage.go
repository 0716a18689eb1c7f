// Package storage is the client's persistent key-value store, the terminal
// counterpart of browser local storage. The session store keeps the current
// user and bearer token here under the keys UserKey and TokenKey.
package storage

import "context"

const (
	// UserKey holds the JSON-encoded session user.
	UserKey = "user"
	// TokenKey holds the raw bearer token.
	TokenKey = "jwtToken"
)

// Storage is a string key-value store. Multi-key writes are atomic: either
// every key is written (or removed) or none is.
type Storage interface {
	// GetItem returns the value for key and whether it was present.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItems(ctx context.Context, items map[string]string) error
	RemoveItems(ctx context.Context, keys ...string) error
	Close() error
}
