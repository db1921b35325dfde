package models

import "time"

// LogEntry is a service log row written by the slog DB handler.
type LogEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	Level     string    `json:"level" gorm:"index"`
	Message   string    `json:"message"`
	Source    string    `json:"source" gorm:"index"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Data      string    `json:"data"`
}
