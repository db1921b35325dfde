// Package conversation is the append-only log of input/output pairs per thread.
package conversation

import (
	"crew-agent-api/backend/database"
	"crew-agent-api/backend/models"
)

// HistoryLimit caps how many entries a history read returns per thread.
const HistoryLimit = 20

// Append stores one interaction. The timestamp and id are assigned by the
// database. Callers on the request path treat failures as best-effort: log
// them and move on, the primary response must not block on the log.
func Append(threadID, userInput, agentResponse string) (models.ConversationEntry, error) {
	entry := models.ConversationEntry{
		ThreadID:      threadID,
		UserInput:     userInput,
		AgentResponse: agentResponse,
	}
	err := database.DB.Create(&entry).Error
	return entry, err
}

// History returns up to limit of the thread's most recent entries, in
// chronological ascending order. An unknown thread yields an empty slice.
func History(threadID string, limit int) []models.ConversationEntry {
	if limit <= 0 {
		limit = HistoryLimit
	}

	var entries []models.ConversationEntry
	database.DB.
		Where("thread_id = ?", threadID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&entries)

	// Most-recent-first truncation, then back to chronological order.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}
