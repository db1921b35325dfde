package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"crew-agent-api/backend/config"
	"crew-agent-api/backend/database"
	"crew-agent-api/backend/models"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

var Store *sessions.CookieStore

// InitSession configures the cookie store from config. Without SESSION_SECRET
// a random per-process secret is generated; sessions then die with the
// process, which matches the in-memory database anyway.
func InitSession() error {
	secret := config.C.Session.Secret
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		secret = hex.EncodeToString(buf)
		slog.Warn("SESSION_SECRET not set, using a random per-process secret", "source", "auth")
	}

	Store = sessions.NewCookieStore([]byte(secret))
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(config.C.Session.Timeout.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return nil
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		slog.Warn("login failed: user not found", "source", "auth", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		slog.Warn("login failed: invalid password", "source", "auth", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	session, _ := Store.Get(r, "session")
	session.Values["user_id"] = user.ID
	session.Values["email"] = user.Email
	session.Save(r, w)

	slog.Info("user logged in", "source", "auth", "user_id", user.ID, "email", req.Email)
	writeJSON(w, http.StatusOK, map[string]string{"email": user.Email})
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		slog.Warn("registration failed: email exists", "source", "auth", "email", req.Email)
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("registration failed: hash error", "source", "auth", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	user := models.User{Email: req.Email, Password: string(hashed)}
	if err := database.DB.Create(&user).Error; err != nil {
		slog.Error("registration failed: db error", "source", "auth", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("user registered", "source", "auth", "user_id", user.ID, "email", req.Email)

	session, _ := Store.Get(r, "session")
	session.Values["user_id"] = user.ID
	session.Values["email"] = user.Email
	session.Save(r, w)

	writeJSON(w, http.StatusCreated, map[string]string{"email": user.Email})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := Store.Get(r, "session")
	userID, _ := session.Values["user_id"].(uint)
	slog.Info("user logged out", "source", "auth", "user_id", userID)

	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	session.Save(r, w)

	w.WriteHeader(http.StatusNoContent)
}

// GetCurrentUser is a variable to allow mocking in tests
var GetCurrentUser = func(r *http.Request) *models.User {
	session, err := Store.Get(r, "session")
	if err != nil {
		return nil
	}
	userID, ok := session.Values["user_id"].(uint)
	if !ok {
		return nil
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil
	}
	return &user
}
