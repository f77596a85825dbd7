package http

import (
	"net/http"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
)

// MaxRequestSizeMiddleware rejects declared oversized bodies up front and caps
// the rest; DecodeJSON then fails with *http.MaxBytesError.
func MaxRequestSizeMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = constants.DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				WriteErrorCode(w, r, http.StatusRequestEntityTooLarge, CodeRequestTooLarge, "request body too large")
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
