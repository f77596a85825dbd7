package http

import (
	"net/http"
	"runtime/debug"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					metrics.PanicsRecovered.Inc()
					log.WithFields(r.Context(), logger.Fields{
						"path":   r.URL.Path,
						"action": "panic_recovered",
					}).Criticalf("panic recovered: %v\n%s", err, debug.Stack())
					WriteErrorCode(w, r, commonerrors.ErrInternalError.HTTPStatus(), commonerrors.ErrInternalError.Code(), commonerrors.ErrInternalError.Message())
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
