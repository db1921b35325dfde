package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"crew-agent-api/backend/database"
	"crew-agent-api/backend/models"
)

type LogsResponse struct {
	Logs    []models.LogEntry `json:"logs"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// GetLogs returns service logs, newest first, with optional level/source/search
// filters and pagination.
func GetLogs(w http.ResponseWriter, r *http.Request) {
	var logs []models.LogEntry
	q := database.DB.Order("created_at DESC")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	if level := r.URL.Query().Get("level"); level != "" {
		q = q.Where("level = ?", level)
	}
	if source := r.URL.Query().Get("source"); source != "" {
		q = q.Where("source = ?", source)
	}
	if search := r.URL.Query().Get("search"); search != "" {
		q = q.Where("message LIKE ? OR data LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	q.Model(&models.LogEntry{}).Count(&total)

	offset := (page - 1) * perPage
	q.Offset(offset).Limit(perPage).Find(&logs)

	writeJSON(w, http.StatusOK, LogsResponse{
		Logs:    logs,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetLogSources lists the distinct log sources seen so far.
func GetLogSources(w http.ResponseWriter, r *http.Request) {
	var sources []string
	database.DB.Model(&models.LogEntry{}).Distinct("source").Where("source != ''").Pluck("source", &sources)
	writeJSON(w, http.StatusOK, sources)
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

func DeleteLogs(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "No IDs provided")
		return
	}

	result := database.DB.Delete(&models.LogEntry{}, req.IDs)
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": result.RowsAffected})
}
