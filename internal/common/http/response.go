package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
)

// ErrorEnvelope is the body of every error response. Error duplicates Message
// because browser clients read the error field.
type ErrorEnvelope struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	TraceID string         `json:"trace_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteErrorCode(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteErrorEnvelope(w, status, code, message, nil, TraceIDFromContext(r.Context()))
}

func WriteErrorEnvelope(w http.ResponseWriter, status int, code, message string, details map[string]any, traceID string) {
	env := ErrorEnvelope{Error: message, Code: code, Message: message}
	if len(details) > 0 {
		env.Details = details
	}
	if traceID != "" {
		env.TraceID = traceID
	}
	WriteJSON(w, status, env)
}

func DecodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// WriteDecodeError answers a failed DecodeJSON with 413 for oversized bodies,
// INVALID_PAYLOAD for well-formed JSON that is not an object and INVALID_JSON
// otherwise.
func WriteDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteErrorCode(w, r, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, "request body too large")
		return
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "" {
		payloadErr := commonerrors.ErrInvalidPayload
		WriteErrorCode(w, r, payloadErr.HTTPStatus(), payloadErr.Code(), "request body must be a JSON object")
		return
	}
	WriteErrorCode(w, r, http.StatusBadRequest, CodeInvalidJSON, "invalid json")
}

// GetClientIP keys clients by the connection address. X-Real-IP and
// X-Forwarded-For are honored only when trustProxyHeaders is set, since any
// client can send them.
func GetClientIP(r *http.Request, trustProxyHeaders bool) string {
	if trustProxyHeaders {
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func WithTimeout(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next(w, r.WithContext(ctx))
		}
	}
}
