// Package storage provides the key-value persistence the history archive
// writes through. Providers give no transactional guarantees.
package storage

import (
	"errors"
	"sync"
)

// ErrClosed is returned by providers used after Close.
var ErrClosed = errors.New("storage closed")

// Provider is a durable string key-value store.
type Provider interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Memory is an in-process Provider, mainly for tests.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
