package jwtverify

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signTest(t *testing.T, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()
	token, err := Sign([]byte(testSecret), Claims{UserID: "user-1", Email: "a@example.com"}, "jti-1", issuedAt, ttl)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestParseToken_RoundTrip(t *testing.T) {
	token := signTest(t, time.Now(), time.Hour)

	claims, err := ParseToken(token, []byte(testSecret))
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token := signTest(t, time.Now().Add(-2*time.Hour), time.Hour)

	_, err := ParseToken(token, []byte(testSecret))
	if !errors.Is(err, commonerrors.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token := signTest(t, time.Now(), time.Hour)

	if _, err := ParseToken(token, []byte("another-secret-another-secret-xx")); err == nil {
		t.Errorf("expected error for wrong secret")
	}
}

func TestParseToken_MissingEmail(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken(token, []byte(testSecret)); !errors.Is(err, commonerrors.ErrMissingTokenClaims) {
		t.Errorf("expected ErrMissingTokenClaims, got %v", err)
	}
}

func serve(mw func(http.Handler) http.Handler, header string) (*httptest.ResponseRecorder, *Claims) {
	var seen *Claims
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := FromContext(r.Context()); ok {
			seen = &c
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func TestOptionalMiddleware_MalformedHeaderRejected(t *testing.T) {
	rec, seen := serve(OptionalMiddleware(testSecret, logger.NewNop()), "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
	if seen != nil {
		t.Errorf("expected handler not to run")
	}
}

func TestOptionalMiddleware_AnonymousPasses(t *testing.T) {
	rec, seen := serve(OptionalMiddleware(testSecret, logger.NewNop()), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if seen != nil {
		t.Errorf("expected no claims for anonymous request")
	}
}

func TestOptionalMiddleware_ValidTokenSetsClaims(t *testing.T) {
	token := signTest(t, time.Now(), time.Hour)
	rec, seen := serve(OptionalMiddleware(testSecret, logger.NewNop()), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if seen == nil || seen.UserID != "user-1" {
		t.Errorf("expected claims for user-1, got %+v", seen)
	}
}

func TestOptionalMiddleware_InvalidTokenRejected(t *testing.T) {
	rec, _ := serve(OptionalMiddleware(testSecret, logger.NewNop()), "Bearer not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}
