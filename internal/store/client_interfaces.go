package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the client's persisted key/value storage.
type LocalStorage interface {
	// Get returns the value stored under key; ok is false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// SetMany writes all pairs in a single transaction.
	SetMany(ctx context.Context, values map[string]string) error
	// Delete removes keys in a single transaction. Absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
