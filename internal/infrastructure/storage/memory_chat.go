package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	contexts map[string]*entity.ChatContext
	maxSize  int
}

// NewMemoryChatRepository in-memory chat repository yaratish
func NewMemoryChatRepository(maxContextSize int) repository.ChatRepository {
	if maxContextSize <= 0 {
		maxContextSize = 20
	}
	return &memoryChatRepository{
		contexts: make(map[string]*entity.ChatContext),
		maxSize:  maxContextSize,
	}
}

// SaveMessage xabarni saqlash
func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chatCtx, exists := m.contexts[message.SessionID]
	if !exists {
		chatCtx = &entity.ChatContext{
			SessionID: message.SessionID,
			Messages:  []entity.Message{},
		}
		m.contexts[message.SessionID] = chatCtx
	}

	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	chatCtx.Append(message, m.maxSize)
	return nil
}

// GetHistory sessiya tarixini olish (eski -> yangi)
func (m *memoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chatCtx, exists := m.contexts[sessionID]
	if !exists {
		return []entity.Message{}, nil
	}

	messages := chatCtx.Messages
	if limit > 0 && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}

	out := make([]entity.Message, len(messages))
	copy(out, messages)
	return out, nil
}

// ClearHistory sessiya tarixini tozalash
func (m *memoryChatRepository) ClearHistory(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.contexts, sessionID)
	return nil
}
