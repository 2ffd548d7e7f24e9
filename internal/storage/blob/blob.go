// Package blob defines the key-value persistence boundary the catalog
// writes through. Implementations store opaque strings under fixed keys;
// there are no transactions and no expiry.
package blob

import (
	"context"
	"sync"
)

// Store is a flat key-value blob store. Get reports whether the key was
// present; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is a map-backed Store, safe for concurrent use. State lives only
// for the process lifetime; used in tests and the ephemeral demo mode.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.blobs[key]
	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}
