package entity

import "time"

// AdminSession Telegram foydalanuvchisining admin sessiyasi
type AdminSession struct {
	UserID       int64
	IsAdmin      bool
	LoginTime    time.Time
	LastActivity time.Time
}

// Active oxirgi faollikdan beri timeout o'tmagan bo'lsa
func (s AdminSession) Active(now time.Time, timeout time.Duration) bool {
	return s.IsAdmin && now.Sub(s.LastActivity) <= timeout
}

// AdminAction katalog bo'yicha admin harakati (audit uchun)
type AdminAction struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"` // usecase.Action* konstantalari
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
