package models

import "time"

// ConversationEntry is one persisted input/output pair for a thread.
// Entries are append-only; CreatedAt is assigned by gorm at insert time.
type ConversationEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ThreadID      string    `json:"thread_id" gorm:"index;not null"`
	CreatedAt     time.Time `json:"timestamp"`
	UserInput     string    `json:"user_input" gorm:"not null"`
	AgentResponse string    `json:"agent_response"`
}
