package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crew-agent-api/backend/config"
)

func setupAuth(t *testing.T) {
	t.Helper()
	setupTestDB(t)
	config.C.Session.Secret = "test-secret-key-32-chars-long!!!"
	config.C.Session.Timeout = time.Hour
	if err := InitSession(); err != nil {
		t.Fatal(err)
	}
}

func TestInitSession_GeneratesSecretWhenUnset(t *testing.T) {
	config.C.Session.Secret = ""
	config.C.Session.Timeout = time.Hour

	if err := InitSession(); err != nil {
		t.Fatalf("InitSession should fall back to a random secret: %v", err)
	}
	if Store == nil {
		t.Fatal("Expected session store to be initialized")
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupAuth(t)

	req := httptest.NewRequest("POST", "/admin/register",
		strings.NewReader(`{"email": "op@example.com", "password": "secret123"}`))
	rec := httptest.NewRecorder()
	Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201 from register, got %d: %s", rec.Code, rec.Body.String())
	}

	loginReq := httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"email": "op@example.com", "password": "secret123"}`))
	loginRec := httptest.NewRecorder()
	Login(loginRec, loginReq)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from login, got %d: %s", loginRec.Code, loginRec.Body.String())
	}
	if len(loginRec.Result().Cookies()) == 0 {
		t.Error("Expected a session cookie on login")
	}

	// The session cookie authenticates subsequent requests.
	authed := httptest.NewRequest("GET", "/admin/api/logs", nil)
	for _, c := range loginRec.Result().Cookies() {
		authed.AddCookie(c)
	}
	if user := GetCurrentUser(authed); user == nil || user.Email != "op@example.com" {
		t.Error("Expected session cookie to resolve to the registered user")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	setupAuth(t)

	req := httptest.NewRequest("POST", "/admin/register",
		strings.NewReader(`{"email": "op@example.com", "password": "secret123"}`))
	Register(httptest.NewRecorder(), req)

	loginReq := httptest.NewRequest("POST", "/admin/login",
		strings.NewReader(`{"email": "op@example.com", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	Login(rec, loginReq)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong password, got %d", rec.Code)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	setupAuth(t)

	body := `{"email": "op@example.com", "password": "secret123"}`
	Register(httptest.NewRecorder(), httptest.NewRequest("POST", "/admin/register", strings.NewReader(body)))

	rec := httptest.NewRecorder()
	Register(rec, httptest.NewRequest("POST", "/admin/register", strings.NewReader(body)))

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	setupAuth(t)

	rec := httptest.NewRecorder()
	Register(rec, httptest.NewRequest("POST", "/admin/register",
		strings.NewReader(`{"email": "op@example.com", "password": "abc"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for short password, got %d", rec.Code)
	}
}
