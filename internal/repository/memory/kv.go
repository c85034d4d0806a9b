package memory

import (
	"context"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
)

// GetValue returns the value stored under key.
func (m *Memory) GetValue(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.kv[key]
	if !ok {
		return "", entities.ErrKeyNotFound
	}
	return v, nil
}

// SetValue stores value under key.
func (m *Memory) SetValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.kv[key] = value
	return nil
}

// DeleteValue removes key. Missing keys are not an error.
func (m *Memory) DeleteValue(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.kv, key)
	return nil
}
