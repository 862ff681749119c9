package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV used by tests and --store memory runs.
// Contents do not survive the process, so every analysis starts cold.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

func (m *Memory) Get(_ context.Context, bucket, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[bucket][key]
	return v, ok, nil
}

func (m *Memory) Put(_ context.Context, bucket, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.data[bucket]
	if !ok {
		b = make(map[string]string)
		m.data[bucket] = b
	}
	b[key] = value
	return nil
}

func (m *Memory) Count(_ context.Context, bucket string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.data[bucket])), nil
}

func (m *Memory) Close() error { return nil }
