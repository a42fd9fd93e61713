package repository

import (
	"context"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// AIRepository AI bilan ishlash uchun interface
type AIRepository interface {
	// GenerateReply katalog konteksti va tarix bilan javob yaratish
	GenerateReply(ctx context.Context, message string, history []entity.Message, products []entity.Product) (string, error)
}
