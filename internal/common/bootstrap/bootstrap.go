package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	analysishttp "github.com/AlibekovAA/caption-studio/backend/internal/analysis/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/sentiment"
	analysisservice "github.com/AlibekovAA/caption-studio/backend/internal/analysis/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/service/dto"
	"github.com/AlibekovAA/caption-studio/backend/internal/analysis/theme"
	authhttp "github.com/AlibekovAA/caption-studio/backend/internal/auth/http"
	authservice "github.com/AlibekovAA/caption-studio/backend/internal/auth/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/config"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/caption-studio/backend/internal/common/crypto"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/db"
	commonhttp "github.com/AlibekovAA/caption-studio/backend/internal/common/http"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/server"
	userrepo "github.com/AlibekovAA/caption-studio/backend/internal/user/repository"
)

const AppName = "caption-studio"

type App struct {
	Config   config.APIConfig
	Log      *logger.Logger
	Pool     *pgxpool.Pool
	UserRepo userrepo.Repository
	Auth     *authservice.AuthService
	Analysis *analysisservice.AnalysisService

	rateLimiter *commonhttp.PathRateLimiter
	cancel      context.CancelFunc
}

type healthResponse struct {
	Status string `json:"status"`
	dto.Capabilities
	Database string `json:"database"`
}

func NewLogger() (*logger.Logger, error) {
	cfg := config.LoadLogConfig()
	return logger.New(cfg.Dir, AppName, cfg.Level)
}

// NewApp wires the API. Without DATABASE_URL users live in memory and are
// lost on restart.
func NewApp(ctx context.Context, cfg config.APIConfig, log *logger.Logger) (*App, error) {
	appCtx, cancel := context.WithCancel(ctx)

	repo, pool, err := OpenUserRepository(appCtx, cfg.Database, log)
	if err != nil {
		cancel()
		return nil, err
	}
	if pool != nil {
		db.StartPoolMetrics(appCtx, pool, constants.DBPoolMetricsInterval)
	}

	clk := clock.NewRealClock()
	idGen := commoncrypto.NewUUIDGenerator()
	auth := authservice.NewAuthService(
		repo,
		commoncrypto.NewBcryptHasher(cfg.BcryptCost),
		idGen,
		authservice.NewTokenIssuer(cfg.JWTSecret, idGen, cfg.AccessTokenTTL, clk),
		clk,
		log,
	)

	classifier, aiVision := NewClassifier(appCtx, cfg.Analysis, log)
	analysis := analysisservice.NewAnalysisService(
		classifier,
		sentiment.NewLexiconAnalyzer(),
		analysisservice.NewRandomSource(),
		aiVision,
		log,
	)

	log.WithFields(ctx, logger.Fields{
		"action":     "app_initialized",
		"classifier": classifier.Name(),
		"ai_vision":  aiVision,
		"database":   pool != nil,
	}).Info("application initialized")

	return &App{
		Config:      cfg,
		Log:         log,
		Pool:        pool,
		UserRepo:    repo,
		Auth:        auth,
		Analysis:    analysis,
		rateLimiter: commonhttp.NewPathRateLimiter(cfg.TrustProxyHeaders),
		cancel:      cancel,
	}, nil
}

// OpenUserRepository connects to Postgres and applies migrations when a URL
// is configured and falls back to the in-memory store otherwise. The pool is
// nil in memory mode.
func OpenUserRepository(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (userrepo.Repository, *pgxpool.Pool, error) {
	if cfg.URL == "" {
		log.Warn("DATABASE_URL not set: using in-memory user store")
		return userrepo.NewMemoryRepository(), nil, nil
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, log, cfg.URL); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	pool, err := db.NewPool(ctx, log, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	return userrepo.NewPgRepository(pool, log), pool, nil
}

// NewClassifier builds the configured theme classifier. A Gemini API key
// wraps it with the image describer; a describer that cannot be created is
// logged and skipped.
func NewClassifier(ctx context.Context, cfg config.AnalysisConfig, log *logger.Logger) (theme.Classifier, bool) {
	var base theme.Classifier = theme.NewRuleClassifier()
	if cfg.Classifier == config.ClassifierKeywords {
		base = theme.NewKeywordClassifier()
	}

	if cfg.GeminiAPIKey == "" {
		log.Info("GEMINI_API_KEY not set: using rule-based theme detection")
		return base, false
	}

	describer, err := theme.NewGeminiDescriber(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, log)
	if err != nil {
		log.Warnf("gemini describer disabled: %v", err)
		return base, false
	}
	return theme.NewDescribingClassifier(base, describer, log), true
}

func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		commonhttp.WriteErrorCode(w, r, http.StatusNotFound, commonhttp.CodeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		commonhttp.WriteErrorCode(w, r, http.StatusMethodNotAllowed, commonhttp.CodeMethodNotAllowed, "method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/health", commonhttp.HealthHandler(a.Log, a.health))
	authhttp.NewHandler(a.Auth, a.Config.RequestTimeout, a.Log).Routes(r)
	analysishttp.NewHandler(a.Analysis, a.Config.JWTSecret, a.Config.RequestTimeout, a.Log).Routes(r)

	return commonhttp.BuildBaseHandler(AppName, a.Log, r, commonhttp.BaseOptions{
		MaxRequestBytes: a.Config.MaxRequestBytes,
		AllowedOrigins:  a.Config.CORSAllowedOrigins,
		RateLimiter:     a.rateLimiter,
	})
}

func (a *App) health(ctx context.Context) (int, any) {
	body := healthResponse{
		Status:       "healthy",
		Capabilities: a.Analysis.Capabilities(),
		Database:     "memory",
	}
	if a.Pool != nil {
		body.Database = "ok"
		if err := db.Ping(ctx, a.Pool); err != nil {
			a.Log.WithFields(ctx, logger.Fields{
				"action": "health_db_ping_failed",
			}).Warnf("database ping failed: %v", err)
			body.Status = "degraded"
			body.Database = "unavailable"
		}
	}
	return http.StatusOK, body
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (a *App) Run(ctx context.Context) error {
	srv := server.NewServer(server.DefaultServerConfig(a.Config.HTTPPort), a.Handler())
	hooks := []server.ShutdownHook{
		func(ctx context.Context) error {
			a.Close()
			return nil
		},
	}
	return server.StartWithGracefulShutdownAndHooks(ctx, srv, a.Log, AppName, hooks)
}

func (a *App) Close() {
	a.cancel()
	a.rateLimiter.Stop()
	if a.Pool != nil {
		a.Pool.Close()
	}
	_ = a.Log.Sync()
}
