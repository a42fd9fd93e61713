package repository

import (
	"context"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

// ChatRepository chat history bilan ishlash uchun interface
type ChatRepository interface {
	// SaveMessage xabarni saqlash
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory sessiya tarixini olish (eski -> yangi)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error)

	// ClearHistory sessiya tarixini tozalash
	ClearHistory(ctx context.Context, sessionID string) error
}
