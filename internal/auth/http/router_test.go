package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	authhttp "github.com/AlibekovAA/caption-studio/backend/internal/auth/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/auth/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/caption-studio/backend/internal/common/crypto"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	userrepo "github.com/AlibekovAA/caption-studio/backend/internal/user/repository"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

type errorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type userBody struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

type authBody struct {
	Message string   `json:"message"`
	User    userBody `json:"user"`
	Token   string   `json:"token"`
}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logger.NewNop()
	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Second))
	idGen := commoncrypto.NewUUIDGenerator()

	svc := service.NewAuthService(
		userrepo.NewMemoryRepository(),
		commoncrypto.NewBcryptHasher(bcrypt.MinCost),
		idGen,
		service.NewTokenIssuer(testJWTSecret, idGen, time.Hour, clk),
		clk,
		log,
	)

	r := chi.NewRouter()
	authhttp.NewHandler(svc, 5*time.Second, log).Routes(r)
	return r
}

func post(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return env
}

func TestAuthHTTP_Signup_Success(t *testing.T) {
	h := setupRouter(t)

	rec := post(t, h, "/api/auth/signup", map[string]string{"email": "New@Example.com", "password": "secret1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body authBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "User registered successfully" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.User.Email != "new@example.com" {
		t.Errorf("expected normalized email, got %s", body.User.Email)
	}
	if body.User.LastLogin != nil {
		t.Errorf("expected null last_login after signup")
	}
	if body.Token == "" {
		t.Errorf("expected token")
	}
}

func TestAuthHTTP_Signup_Errors(t *testing.T) {
	h := setupRouter(t)
	if rec := post(t, h, "/api/auth/signup", map[string]string{"email": "dup@example.com", "password": "secret1"}); rec.Code != http.StatusCreated {
		t.Fatalf("seed signup failed: %d", rec.Code)
	}

	cases := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"missing password", map[string]string{"email": "a@example.com"}, http.StatusBadRequest, "Email and password are required"},
		{"short password", map[string]string{"email": "a@example.com", "password": "12345"}, http.StatusBadRequest, "Password must be at least 6 characters"},
		{"duplicate", map[string]string{"email": "DUP@example.com", "password": "secret1"}, http.StatusConflict, "Email already registered"},
		{"invalid json", "{", http.StatusBadRequest, "invalid json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, "/api/auth/signup", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			if env := decodeError(t, rec); env.Error != tc.message {
				t.Errorf("expected error %q, got %q", tc.message, env.Error)
			}
		})
	}
}

func TestAuthHTTP_Login(t *testing.T) {
	h := setupRouter(t)
	post(t, h, "/api/auth/signup", map[string]string{"email": "user@example.com", "password": "secret1"})

	rec := post(t, h, "/api/auth/login", map[string]string{"email": " USER@example.com ", "password": "secret1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body authBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Login successful" {
		t.Errorf("unexpected message %q", body.Message)
	}
	if body.User.LastLogin == nil {
		t.Errorf("expected last_login after login")
	}

	rec = post(t, h, "/api/auth/login", map[string]string{"email": "user@example.com", "password": "wrong-pass"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
	if env := decodeError(t, rec); env.Error != "Invalid email or password" {
		t.Errorf("unexpected error %q", env.Error)
	}

	rec = post(t, h, "/api/auth/login", map[string]string{"email": "nobody@example.com", "password": "secret1"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for unknown email, got %d", rec.Code)
	}
}

func TestAuthHTTP_Users(t *testing.T) {
	h := setupRouter(t)
	post(t, h, "/api/auth/signup", map[string]string{"email": "one@example.com", "password": "secret1"})
	post(t, h, "/api/auth/signup", map[string]string{"email": "two@example.com", "password": "secret2"})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	var count int
	_ = json.Unmarshal(raw["count"], &count)
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}

	var users []map[string]any
	_ = json.Unmarshal(raw["users"], &users)
	for _, u := range users {
		if _, ok := u["password_hash"]; ok {
			t.Errorf("expected password hash not to be serialized")
		}
	}
}
