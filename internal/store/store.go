package store

import (
	"context"
	"fmt"
	"sync"
)

// Store loads and saves named blobs.
type Store interface {
	// Load returns the blob under key, or (nil, nil) when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the blob under key.
	Save(ctx context.Context, key string, value []byte) error
}

// Item is one key/value pair of a batch write.
type Item struct {
	Key   string
	Value []byte
}

// BatchSaver is implemented by stores that can write several keys in one
// atomic step.
type BatchSaver interface {
	SaveBatch(ctx context.Context, items []Item) error
}

// SaveItems writes items atomically when s supports it, otherwise one by one
// in order.
func SaveItems(ctx context.Context, s Store, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	if b, ok := s.(BatchSaver); ok && len(items) > 1 {
		return b.SaveBatch(ctx, items)
	}
	for _, it := range items {
		if err := s.Save(ctx, it.Key, it.Value); err != nil {
			return fmt.Errorf("save %s: %w", it.Key, err)
		}
	}
	return nil
}

// Memory is a map-backed Store. Values are copied on the way in and out.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// SaveBatch writes all items under one lock.
func (m *Memory) SaveBatch(_ context.Context, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range items {
		m.data[it.Key] = append([]byte(nil), it.Value...)
	}
	return nil
}

// Keys returns the number of stored keys.
func (m *Memory) Keys() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
