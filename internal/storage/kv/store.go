// Package kv provides the durable key-value store underneath the persistence
// facade. Each logical record (students, settings, session) lives under its
// own key as an opaque byte payload; serialization is the caller's concern.
package kv

import (
	"context"
	"errors"
)

// Store errors
var (
	// ErrKeyNotFound is returned when no value is stored under the key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrStoreFull is returned when a write fails because the underlying
	// storage is out of space.
	ErrStoreFull = errors.New("store full")
)

// Store is a durable key-value store. Put and Delete must be durable before
// they return; the facade relies on read-after-write within a single actor.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
	// Close releases store resources.
	Close() error
}
