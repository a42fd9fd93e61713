package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

// SessionTimeout admin sessiyasi shu vaqt faolsiz qolsa tugaydi
const SessionTimeout = 24 * time.Hour

const maxActionLog = 500

type memoryAdminRepository struct {
	mu       sync.RWMutex
	sessions map[int64]entity.AdminSession
	actions  []entity.AdminAction
	now      func() time.Time
}

// NewMemoryAdminRepository in-memory admin repository yaratish
func NewMemoryAdminRepository() repository.AdminRepository {
	return &memoryAdminRepository{
		sessions: make(map[int64]entity.AdminSession),
		actions:  []entity.AdminAction{},
		now:      time.Now,
	}
}

// CreateSession admin sessiyasini yaratish
func (m *memoryAdminRepository) CreateSession(ctx context.Context, session entity.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.LastActivity = m.now()
	m.sessions[session.UserID] = session
	return nil
}

// Touch sessiyaning oxirgi faolligini yangilash
func (m *memoryAdminRepository) Touch(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[userID]
	if !exists {
		return fmt.Errorf("session for user %d: %w", userID, repository.ErrNotFound)
	}
	session.LastActivity = m.now()
	m.sessions[userID] = session
	return nil
}

// DeleteSession sessiyani o'chirish (logout)
func (m *memoryAdminRepository) DeleteSession(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}

// IsAdmin foydalanuvchi admin ekanligini tekshirish
func (m *memoryAdminRepository) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[userID]
	return exists && session.Active(m.now(), SessionTimeout), nil
}

// LogAction admin harakatini loglash
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	if len(m.actions) > maxActionLog {
		m.actions = append([]entity.AdminAction(nil), m.actions[len(m.actions)-maxActionLog:]...)
	}
	return nil
}

// RecentActions oxirgi harakatlar (yangi -> eski)
func (m *memoryAdminRepository) RecentActions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.actions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]entity.AdminAction, 0, n)
	for i := len(m.actions) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.actions[i])
	}
	return out, nil
}
