package entity

import "time"

// Message bitta savol-javob juftligi; Response bo'sh bo'lishi mumkin emas
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Username  string    `json:"username,omitempty"`
	Text      string    `json:"text"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatContext sessiya tarixi (eski -> yangi)
type ChatContext struct {
	SessionID string
	Messages  []Message
	LastUsed  time.Time
}

// Append xabar qo'shib, tarixni oxirgi maxSize ta xabar bilan cheklaydi
func (c *ChatContext) Append(msg Message, maxSize int) {
	c.Messages = append(c.Messages, msg)
	c.LastUsed = msg.Timestamp
	if maxSize > 0 && len(c.Messages) > maxSize {
		c.Messages = append([]Message(nil), c.Messages[len(c.Messages)-maxSize:]...)
	}
}
