package port

import "context"

// KeyValueRepository is durable device-local key-value storage. Values are
// written whole; there are no partial updates.
type KeyValueRepository interface {
	// GetItem returns the value stored under key; found is false when the key is absent
	GetItem(ctx context.Context, key string) (value string, found bool, err error)

	// SetItem overwrites the value stored under key
	SetItem(ctx context.Context, key string, value string) error
}
