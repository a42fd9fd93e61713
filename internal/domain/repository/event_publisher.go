package repository

import (
	"context"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// EventPublisher import hodisalarini tashqariga yuborish
type EventPublisher interface {
	PublishImport(ctx context.Context, event entity.ImportEvent) error
	Close() error
}
