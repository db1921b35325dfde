package middleware

import (
	"net/http"

	"crew-agent-api/backend/handlers"
)

// RequireLocalAuth guards the admin API. This is a JSON surface, so an
// unauthenticated request gets a 401 rather than a login redirect.
func RequireLocalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := handlers.GetCurrentUser(r)
		if user == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Authentication required"}`))
			return
		}
		next(w, r)
	}
}
