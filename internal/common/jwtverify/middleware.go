package jwtverify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/caption-studio/backend/internal/common/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

type Claims struct {
	UserID string
	Email  string
}

// tokenClaims is the signed payload: sub, email, jti, iat, exp.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type contextKey string

const claimsKey contextKey = "jwt_claims"

// Sign produces an HS256 access token for the given subject.
func Sign(secret []byte, claims Claims, jti string, issuedAt time.Time, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})
	return t.SignedString(secret)
}

// OptionalMiddleware lets anonymous requests through but still rejects a
// bearer token that fails verification.
func OptionalMiddleware(secret string, log *logger.Logger) func(next http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := strings.CutPrefix(raw, "Bearer ")
			if !ok {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "jwt_malformed_header",
				}).Warn("jwt auth failed: malformed authorization header")
				commonhttp.WriteErrorCode(w, r, http.StatusUnauthorized, commonhttp.CodeMissingAuth, "missing or invalid authorization")
				return
			}

			claims, err := ParseToken(tokenString, key)
			if err != nil {
				log.WithFields(r.Context(), logger.Fields{
					"path":   r.URL.Path,
					"action": "jwt_invalid",
				}).Warnf("jwt auth failed: %v", err)
				commonhttp.WriteErrorCode(w, r, http.StatusUnauthorized, commonhttp.CodeInvalidToken, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}

func ParseToken(tokenString string, secret []byte) (Claims, error) {
	metrics.JWTValidationsTotal.Inc()

	claims, err := parseToken(tokenString, secret)
	if err != nil {
		metrics.JWTValidationsFailed.Inc()
		return Claims{}, err
	}
	return claims, nil
}

func parseToken(tokenString string, secret []byte) (Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, commonerrors.ErrInvalidTokenSigningMethod
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, commonerrors.ErrInvalidTokenSigningMethod) {
			return Claims{}, commonerrors.ErrInvalidTokenSigningMethod
		}
		return Claims{}, commonerrors.ErrInvalidToken.WithCause(err)
	}
	if !parsed.Valid {
		return Claims{}, commonerrors.ErrInvalidToken
	}

	if tc.Subject == "" || tc.Email == "" {
		return Claims{}, fmt.Errorf("%w: sub or email", commonerrors.ErrMissingTokenClaims)
	}

	return Claims{
		UserID: tc.Subject,
		Email:  tc.Email,
	}, nil
}
