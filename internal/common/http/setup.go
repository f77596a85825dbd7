package http

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
)

type BaseOptions struct {
	MaxRequestBytes int64
	AllowedOrigins  []string
	RateLimiter     *PathRateLimiter
}

func BuildBaseHandler(appName string, log *logger.Logger, handler http.Handler, opts BaseOptions) http.Handler {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = constants.DefaultMaxRequestSize
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	collector := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(opts.MaxRequestBytes)
	securityHeaders := SecurityHeadersMiddleware("")
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	inner := handler
	if opts.RateLimiter != nil {
		inner = opts.RateLimiter.Middleware(inner)
	}

	return securityHeaders(recovery(traceID(maxRequestSize(collector.Wrap(corsHandler(inner))))))
}
