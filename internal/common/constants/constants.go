package constants

import "time"

const (
	EmailMaxLength     = 254
	PasswordMinLength  = 6
	PasswordMaxLength  = 72
	JWTSecretMinLength = 32

	DefaultMaxRequestSize = 10 << 20

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 2
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = 1 * time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = 1 * time.Second
	DBPoolMetricsInterval = 30 * time.Second
	DBQueryTimeout        = 5 * time.Second
	DBPingTimeout         = 2 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 60 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultHTTPPort = "5000"

	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultRequestTimeout = 30 * time.Second
	DefaultBcryptCost     = 12

	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultGeminiTimeout = 20 * time.Second

	GeminiBreakerThreshold = 3
	GeminiBreakerReset     = 1 * time.Minute

	ImageAnalysisSize = 150
	MaxImagePixels    = 16_000_000

	RateLimitCleanupInterval = 5 * time.Minute

	RateLimitLoginRequestsPerSecond   = 1.0
	RateLimitLoginBurst               = 5
	RateLimitSignupRequestsPerSecond  = 0.5
	RateLimitSignupBurst              = 3
	RateLimitAnalyzeRequestsPerSecond = 2.0
	RateLimitAnalyzeBurst             = 10
	RateLimitGeneralRequestsPerSecond = 10.0
	RateLimitGeneralBurst             = 20

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
