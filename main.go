package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"crew-agent-api/backend/config"
	"crew-agent-api/backend/database"
	"crew-agent-api/backend/handlers"
	"crew-agent-api/backend/logger"
	"crew-agent-api/backend/middleware"
)

// Rate limiter for auth endpoints (10 requests per minute)
var authRateLimiter = middleware.NewRateLimiter(10, time.Minute)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := database.Init(config.C.DatabasePath); err != nil {
		log.Fatal("Failed to init database:", err)
	}

	// Initialize structured logging
	slog.SetDefault(slog.New(logger.NewDBHandler(database.DB)))
	go logger.CleanupOldLogs(database.DB, config.C.Logs.MaxAge)

	// Initialize session store for the admin API
	if err := handlers.InitSession(); err != nil {
		log.Fatal("Failed to init session:", err)
	}

	// Initialize the agent pipeline; the service still starts when the
	// pipeline is unconfigured and reports that on /.
	if err := handlers.InitCrew(); err != nil {
		log.Fatal("Failed to init crew:", err)
	}

	if config.C.DatabasePath == ":memory:" {
		slog.Warn("conversation log is in-memory only, history is lost on restart", "source", "main")
	}

	slog.Info("server starting", "source", "main", "listen", config.C.Listen)

	mux := http.NewServeMux()

	// Health check (unauthenticated, for load balancers)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Agent routes
	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.HandleFunc("POST /invoke_agent", handlers.InvokeAgent)
	mux.HandleFunc("GET /session_history/{thread_id}", handlers.SessionHistory)

	// Admin auth routes (public, rate limited)
	mux.HandleFunc("POST /admin/login", authRateLimiter.LimitFunc(handlers.Login))
	mux.HandleFunc("POST /admin/register", authRateLimiter.LimitFunc(handlers.Register))
	mux.HandleFunc("POST /admin/logout", handlers.Logout)

	// Admin service-log routes (require local auth)
	mux.HandleFunc("GET /admin/api/logs", middleware.RequireLocalAuth(handlers.GetLogs))
	mux.HandleFunc("GET /admin/api/logs/sources", middleware.RequireLocalAuth(handlers.GetLogSources))
	mux.HandleFunc("DELETE /admin/api/logs", middleware.RequireLocalAuth(handlers.DeleteLogs))

	// Wrap all routes with security headers
	handler := middleware.SecurityHeaders(mux)

	fmt.Printf("Server running at %s\n", config.C.Listen)
	if config.C.TLS.Enabled {
		slog.Info("starting server with TLS", "source", "main")
		log.Fatal(http.ListenAndServeTLS(config.C.Listen, config.C.TLS.Cert, config.C.TLS.Key, handler))
	} else {
		log.Fatal(http.ListenAndServe(config.C.Listen, handler))
	}
}
