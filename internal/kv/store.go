// Package kv defines the durable key-value store the session manager
// persists into, together with SQLite, Postgres, and in-memory
// implementations.
package kv

import "context"

// Store is an opaque-string-keyed durable store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set overwrites an existing value (upsert).
//   - Delete of an absent key is not an error.
//   - Update runs fn against a transactional view of the store; either
//     every write fn performed is applied, or none is.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
