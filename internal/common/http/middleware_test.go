package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return env
}

func TestTraceIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	var seen string
	h := TraceIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if seen == "" {
		t.Fatalf("expected trace id in context")
	}
	if got := rec.Header().Get("X-Trace-ID"); got != seen {
		t.Errorf("expected header %q, got %q", seen, got)
	}
}

func TestTraceIDMiddleware_KeepsIncoming(t *testing.T) {
	var seen string
	h := TraceIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "client-trace")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "client-trace" {
		t.Errorf("expected client-trace, got %q", seen)
	}
}

func TestMaxRequestSizeMiddleware_RejectsDeclaredLength(t *testing.T) {
	called := false
	h := MaxRequestSizeMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"much too long"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if called {
		t.Fatalf("expected handler not to be called")
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", rec.Code)
	}
}

func TestMaxRequestSizeMiddleware_DecodeReportsTooLarge(t *testing.T) {
	h := MaxRequestSizeMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v map[string]any
		if err := DecodeJSON(r, &v); err != nil {
			WriteDecodeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"much too long"}`))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != CodeRequestTooLarge {
		t.Errorf("expected code %s, got %s", CodeRequestTooLarge, env.Code)
	}
}

func TestWriteDecodeError_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{")))
	var v map[string]any
	err := DecodeJSON(req, &v)

	rec := httptest.NewRecorder()
	WriteDecodeError(rec, req, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != CodeInvalidJSON {
		t.Errorf("expected code INVALID_JSON, got %s", env.Code)
	}
	if env.Error != "invalid json" || env.Message != "invalid json" {
		t.Errorf("expected error and message to carry the text, got %+v", env)
	}
}

func TestWriteDecodeError_NonObjectBody(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"text"`, `42`} {
		t.Run(body, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
			var v struct {
				Text string `json:"text"`
			}
			err := DecodeJSON(req, &v)
			if err == nil {
				t.Fatalf("expected decode error for %s", body)
			}

			rec := httptest.NewRecorder()
			WriteDecodeError(rec, req, err)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}
			if env := decodeEnvelope(t, rec); env.Code != commonerrors.ErrInvalidPayload.Code() {
				t.Errorf("expected code %s, got %s", commonerrors.ErrInvalidPayload.Code(), env.Code)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := RecoveryMiddleware(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != commonerrors.ErrInternalError.Code() {
		t.Errorf("expected code %s, got %s", commonerrors.ErrInternalError.Code(), env.Code)
	}
}

func TestErrorHandler_DomainError(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)

	h.HandleError(rec, req, commonerrors.ErrEmailAlreadyExists, "Registration failed")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Code != "EMAIL_ALREADY_EXISTS" {
		t.Errorf("expected code EMAIL_ALREADY_EXISTS, got %s", env.Code)
	}
}

func TestErrorHandler_InternalUsesFallback(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())

	for _, err := range []error{errors.New("pool closed"), commonerrors.ErrDatabaseError} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)

		h.HandleError(rec, req, err, "Failed to fetch users")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", rec.Code)
		}
		if env := decodeEnvelope(t, rec); env.Error != "Failed to fetch users" {
			t.Errorf("expected fallback message, got %q", env.Error)
		}
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatalf("expected burst of two to pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Errorf("expected third request to be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Errorf("expected a different client to have its own bucket")
	}
}

func TestPathRateLimiter_SignupBudget(t *testing.T) {
	prl := NewPathRateLimiter(false)
	defer prl.Stop()

	h := prl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	var last int
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		last = rec.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected signup to be rate limited, got %d", last)
	}
}

func TestPathRateLimiter_SpoofedForwardingHeaders(t *testing.T) {
	prl := NewPathRateLimiter(false)
	defer prl.Stop()

	h := prl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last int
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "192.0.2.20:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		last = rec.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("expected rotating X-Forwarded-For not to bypass the login budget, got %d", last)
	}
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email    string `validate:"required"`
		Password string `validate:"required,min=6"`
	}

	err := ValidateStruct(payload{Email: "a@b.c", Password: "123"})
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if !fe.Has("password", "min") {
		t.Errorf("expected password min violation, got %v", fe)
	}

	if err := ValidateStruct(payload{Email: "a@b.c", Password: "123456"}); err != nil {
		t.Errorf("expected valid payload, got %v", err)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:5555"
	if ip := GetClientIP(req, false); ip != "198.51.100.7" {
		t.Errorf("expected remote addr host, got %s", ip)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1")
	req.Header.Set("X-Real-IP", "203.0.113.9")
	if ip := GetClientIP(req, false); ip != "198.51.100.7" {
		t.Errorf("expected forwarding headers to be ignored, got %s", ip)
	}

	if ip := GetClientIP(req, true); ip != "203.0.113.9" {
		t.Errorf("expected real ip behind a proxy, got %s", ip)
	}
	req.Header.Del("X-Real-IP")
	if ip := GetClientIP(req, true); ip != "203.0.113.1" {
		t.Errorf("expected first forwarded address, got %s", ip)
	}

	req.RemoteAddr = "[2001:db8::1]:443"
	if ip := GetClientIP(req, false); ip != "2001:db8::1" {
		t.Errorf("expected ipv6 host, got %s", ip)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if got := rec.Header().Get("Content-Security-Policy"); got != apiContentSecurityPolicy {
		t.Errorf("expected default csp, got %q", got)
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected no-store on api responses")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Header().Get("Cache-Control") != "" {
		t.Errorf("expected metrics to stay cacheable")
	}
}
