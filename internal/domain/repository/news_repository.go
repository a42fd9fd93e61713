package repository

import (
	"context"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// NewsUpdateFunc joriy yangiliklardan yangi ro'yxat yasaydi
type NewsUpdateFunc func(current []entity.NewsItem) []entity.NewsItem

// NewsRepository yangiliklar katalogi
type NewsRepository interface {
	GetAll(ctx context.Context) ([]entity.NewsItem, error)
	GetByID(ctx context.Context, id string) (*entity.NewsItem, error)
	Replace(ctx context.Context, items []entity.NewsItem) error
	Update(ctx context.Context, fn NewsUpdateFunc) ([]entity.NewsItem, error)
}
