package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type memoryNewsRepository struct {
	mu    sync.RWMutex
	items []entity.NewsItem
}

// NewMemoryNewsRepository in-memory news repository yaratish
func NewMemoryNewsRepository() repository.NewsRepository {
	return &memoryNewsRepository{items: []entity.NewsItem{}}
}

// GetAll yangiliklarni katalog tartibida olish
func (m *memoryNewsRepository) GetAll(ctx context.Context) ([]entity.NewsItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneNews(m.items), nil
}

// GetByID ID bo'yicha yangilikni olish
func (m *memoryNewsRepository) GetByID(ctx context.Context, id string) (*entity.NewsItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("news %s: %w", id, repository.ErrNotFound)
}

// Replace butun ro'yxatni almashtirish
func (m *memoryNewsRepository) Replace(ctx context.Context, items []entity.NewsItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = cloneNews(items)
	return nil
}

// Update fn yozish qulfi ostida ishlaydi
func (m *memoryNewsRepository) Update(ctx context.Context, fn repository.NewsUpdateFunc) ([]entity.NewsItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = cloneNews(fn(cloneNews(m.items)))
	return cloneNews(m.items), nil
}

func cloneNews(items []entity.NewsItem) []entity.NewsItem {
	out := make([]entity.NewsItem, len(items))
	copy(out, items)
	return out
}
