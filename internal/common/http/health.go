package http

import (
	"context"
	"net/http"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

// HealthCheck reports the status code and body for a health probe.
type HealthCheck func(ctx context.Context) (int, any)

func HealthHandler(log *logger.Logger, check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body := check(r.Context())
		if status != http.StatusOK {
			log.WithFields(r.Context(), logger.Fields{
				"status": status,
				"action": "health_degraded",
			}).Warn("health check degraded")
		}
		WriteJSON(w, status, body)
	}
}
