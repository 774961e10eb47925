package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by a Backend when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a per-user key-value store holding unsigned integers.
// Booleans are stored as 0/1 by the Manager.
type Backend interface {
	GetUint32(key string) (uint32, error)
	SetUint32(key string, value uint32) error
}

// MemoryBackend keeps values in process memory. It is used by tests and by
// console builds on platforms without a registry.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]uint32
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]uint32)}
}

func (b *MemoryBackend) GetUint32(key string) (uint32, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (b *MemoryBackend) SetUint32(key string, value uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values[key] = value
	return nil
}
