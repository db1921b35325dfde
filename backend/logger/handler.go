package logger

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"crew-agent-api/backend/models"

	"gorm.io/gorm"
)

// DBHandler writes records to stdout as JSON and mirrors them into the
// service-log table so the admin API can query them.
type DBHandler struct {
	db          *gorm.DB
	jsonHandler slog.Handler
	attrs       []slog.Attr
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	return &DBHandler{
		db:          db,
		jsonHandler: slog.NewJSONHandler(os.Stdout, nil),
	}
}

func (h *DBHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *DBHandler) Handle(ctx context.Context, r slog.Record) error {
	_ = h.jsonHandler.Handle(ctx, r)

	extra := make(map[string]any)
	var source string
	var userID *uint

	collect := func(a slog.Attr) {
		switch a.Key {
		case "source":
			source = a.Value.String()
		case "user_id":
			if id := uintValue(a.Value); id > 0 {
				userID = &id
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
	}

	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(a)
		return true
	})

	var data string
	if len(extra) > 0 {
		b, _ := json.Marshal(extra)
		data = string(b)
	}

	entry := models.LogEntry{
		CreatedAt: time.Now(),
		Level:     r.Level.String(),
		Message:   r.Message,
		Source:    source,
		UserID:    userID,
		Data:      data,
	}

	return h.db.Create(&entry).Error
}

func uintValue(v slog.Value) uint {
	switch v.Kind() {
	case slog.KindInt64:
		return uint(v.Int64())
	case slog.KindUint64:
		return uint(v.Uint64())
	default:
		return 0
	}
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{
		db:          h.db,
		jsonHandler: h.jsonHandler,
		attrs:       merged,
	}
}

func (h *DBHandler) WithGroup(name string) slog.Handler {
	return h
}

// CleanupOldLogs removes service logs older than maxAge. Runs forever; start
// it in a goroutine.
func CleanupOldLogs(db *gorm.DB, maxAge time.Duration) {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		cutoff := time.Now().Add(-maxAge)
		db.Where("created_at < ?", cutoff).Delete(&models.LogEntry{})
	}
}
