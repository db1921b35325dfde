package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"crew-agent-api/backend/config"
	"crew-agent-api/backend/conversation"
	"crew-agent-api/backend/crew"
	"crew-agent-api/backend/llm"
	"crew-agent-api/backend/models"

	"github.com/google/uuid"
)

// Crew is the process-wide pipeline handle. It stays nil when the Azure
// deployment is unconfigured, in which case invocations get a 503.
var Crew *crew.Crew

// InitCrew builds the pipeline from config. Missing credentials are not an
// error: the service still starts and reports itself unconfigured.
func InitCrew() error {
	client, err := llm.NewClient(config.C.Azure, config.C.Crew)
	if err == llm.ErrNotConfigured {
		slog.Warn("crew is not configured, invocations will be rejected",
			"source", "crew")
		return nil
	}
	if err != nil {
		return err
	}
	Crew = crew.NewConversationCrew(client)
	slog.Info("crew initialized", "source", "crew", "deployment", config.C.Azure.Deployment)
	return nil
}

type QueryRequest struct {
	Input    string `json:"input"`
	ThreadID string `json:"thread_id"`
}

type AgentResponse struct {
	ThreadID    string `json:"thread_id"`
	FinalOutput string `json:"final_output"`
}

type HistoryResponse struct {
	ThreadID string                     `json:"thread_id"`
	History  []models.ConversationEntry `json:"history"`
}

// InvokeAgent runs the pipeline on the request input and logs the exchange.
// The thread id comes from the body, the X-Thread-Id header, or is generated.
func InvokeAgent(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Input == "" {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	if Crew == nil {
		writeError(w, http.StatusServiceUnavailable,
			"Agent service is not available or not configured correctly. Check server logs and Azure OpenAI credentials.")
		return
	}

	threadID := req.ThreadID
	if threadID == "" {
		threadID = r.Header.Get("X-Thread-Id")
	}
	if threadID == "" {
		threadID = uuid.NewString()
	}

	slog.Info("kicking off crew", "source", "agent", "thread_id", threadID)

	output, err := Crew.Kickoff(r.Context(), map[string]string{"user_input": req.Input})
	if err != nil {
		slog.Error("crew kickoff failed", "source", "agent", "thread_id", threadID, "error", err.Error())
		// Log the attempt even though the pipeline failed.
		if _, logErr := conversation.Append(threadID, req.Input, "Error: "+err.Error()); logErr != nil {
			slog.Error("failed to log conversation", "source", "agent", "thread_id", threadID, "error", logErr.Error())
		}
		writeError(w, http.StatusInternalServerError, "Error interacting with agent: "+err.Error())
		return
	}

	if output == "" {
		slog.Warn("crew returned empty output", "source", "agent", "thread_id", threadID)
		output = "Agent did not produce a textual output."
	}

	if _, err := conversation.Append(threadID, req.Input, output); err != nil {
		// Best effort only; the response is already in hand.
		slog.Error("failed to log conversation", "source", "agent", "thread_id", threadID, "error", err.Error())
	}

	writeJSON(w, http.StatusOK, AgentResponse{ThreadID: threadID, FinalOutput: output})
}

// SessionHistory replays the conversation log for one thread.
func SessionHistory(w http.ResponseWriter, r *http.Request) {
	threadID := r.PathValue("thread_id")
	if threadID == "" {
		writeError(w, http.StatusBadRequest, "thread_id path parameter is required")
		return
	}

	history := conversation.History(threadID, conversation.HistoryLimit)
	if history == nil {
		history = []models.ConversationEntry{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{ThreadID: threadID, History: history})
}

// Root reports liveness and whether the pipeline is configured.
func Root(w http.ResponseWriter, r *http.Request) {
	message := "Welcome to the Crew Agent API."
	if Crew == nil {
		message += " WARNING: the agent pipeline is not configured. Check server logs and Azure OpenAI credentials."
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
