package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
)

const (
	ClassifierRules    = "rules"
	ClassifierKeywords = "keywords"
)

type LogConfig struct {
	Dir   string `env:"LOG_DIR" env-default:""`
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

type DatabaseConfig struct {
	URL           string `env:"DATABASE_URL"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" env-default:"true"`
}

type AnalysisConfig struct {
	Classifier    string        `env:"ANALYSIS_CLASSIFIER" env-default:"rules"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" env-default:"20s"`
}

type APIConfig struct {
	HTTPPort           string        `env:"HTTP_PORT" env-default:"5000"`
	JWTSecret          string        `env:"JWT_SECRET"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"24h"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
	MaxRequestBytes    int64         `env:"MAX_REQUEST_BYTES" env-default:"10485760"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	BcryptCost         int           `env:"BCRYPT_COST" env-default:"12"`
	TrustProxyHeaders  bool          `env:"TRUST_PROXY_HEADERS" env-default:"false"`

	Database DatabaseConfig
	Analysis AnalysisConfig
	Log      LogConfig
}

// LoadDotEnv loads variables from the given files (or ./.env) without
// overriding ones already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func LoadAPIConfig() (APIConfig, error) {
	var cfg APIConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return APIConfig{}, fmt.Errorf("read env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return APIConfig{}, fmt.Errorf("%w: JWT_SECRET", commonerrors.ErrMissingRequiredEnv)
	}
	if err := validateJWTSecret(cfg.JWTSecret); err != nil {
		return APIConfig{}, err
	}

	cfg.Analysis.Classifier = strings.ToLower(strings.TrimSpace(cfg.Analysis.Classifier))
	switch cfg.Analysis.Classifier {
	case ClassifierRules, ClassifierKeywords:
	default:
		return APIConfig{}, fmt.Errorf("unsupported ANALYSIS_CLASSIFIER %q", cfg.Analysis.Classifier)
	}

	if cfg.MaxRequestBytes <= 0 {
		cfg.MaxRequestBytes = constants.DefaultMaxRequestSize
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = constants.DefaultBcryptCost
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = constants.DefaultAccessTokenTTL
	}

	return cfg, nil
}

func LoadDatabaseConfig() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return DatabaseConfig{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.URL == "" {
		return DatabaseConfig{}, fmt.Errorf("%w: DATABASE_URL", commonerrors.ErrMissingRequiredEnv)
	}
	return cfg, nil
}

type HashingConfig struct {
	BcryptCost int `env:"BCRYPT_COST" env-default:"12"`
}

// LoadHashingConfig reads only the password hashing settings, for commands
// that create users without serving the API.
func LoadHashingConfig() (HashingConfig, error) {
	var cfg HashingConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return HashingConfig{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = constants.DefaultBcryptCost
	}
	return cfg, nil
}

func LoadLogConfig() LogConfig {
	var cfg LogConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return LogConfig{Level: "info"}
	}
	return cfg
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(secret))
	}
	return nil
}
