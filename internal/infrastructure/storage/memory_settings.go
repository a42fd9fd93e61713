package storage

import (
	"context"
	"sync"

	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type memorySettingsRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySettingsRepository in-memory sozlamalar ombori
func NewMemorySettingsRepository() repository.SettingsRepository {
	return &memorySettingsRepository{values: make(map[string]string)}
}

func (m *memorySettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memorySettingsRepository) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
