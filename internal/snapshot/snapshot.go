// Package snapshot dumps and restores whole collections. A snapshot is the
// JSON encoding of every element of one collection, stored under a key.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrPersistence wraps every read, write or decode failure.
var ErrPersistence = errors.New("persistence failed")

// Keys of the collections the booking system snapshots.
const (
	KeyCustomers    = "customers"
	KeyEvents       = "events"
	KeyReservations = "reservations"
)

// Store keeps one opaque blob per key. Put replaces the blob atomically.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// Save encodes items and writes them under key.
func Save[T any](ctx context.Context, store Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrPersistence, key, err)
	}
	if err := store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPersistence, key, err)
	}
	return nil
}

// Load reads and decodes the items stored under key. Element types that
// validate in UnmarshalJSON reject invalid records here.
func Load[T any](ctx context.Context, store Store, key string) ([]T, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrPersistence, key, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrPersistence, key, err)
	}
	return items, nil
}
