package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int    `validate:"min=1,max=65535"`
	LogLevel       string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat      string `validate:"oneof=text json"`
	LogDir         string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // API key for authentication
	TrustedProxies []string

	// Backend selects the listing and account store: memory, postgres or http
	Backend string `validate:"oneof=memory postgres http"`

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	BackendURL     string `validate:"omitempty,url"`
	BackendAPIKey  string
	BackendTimeout time.Duration
	BackendRetries int `validate:"min=0"`

	// RedisAddr enables the search result cache when set
	RedisAddr      string
	RedisPassword  string
	SearchCacheTTL time.Duration

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string `validate:"omitempty,url"`

	DraftSessionTTL    time.Duration
	DraftSessionLimit  int `validate:"min=1"`
	SearchSessionTTL   time.Duration
	SearchSessionLimit int `validate:"min=1"`
	SubmitWorkers      int `validate:"min=1"`
	SubmitQueueSize    int `validate:"min=1"`

	// PopularDecayInterval is how often popular search counts are halved; 0 disables it
	PopularDecayInterval time.Duration

	CatalogPath   string
	CatalogStrict bool

	EventMaxRetries int `validate:"min=0"`
	EventRetryDelay time.Duration
	DeadLetterPath  string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		ServiceName:    getEnv("SERVICE_NAME", "babybank"),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		Backend:        strings.ToLower(getEnv("BACKEND", BackendMemory)),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "babybank"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		BackendURL:     getEnv("BACKEND_URL", ""),
		BackendAPIKey:  getEnv("BACKEND_API_KEY", ""),
		BackendTimeout: getEnvAsDuration("BACKEND_TIMEOUT", DefaultBackendTimeout),
		BackendRetries: getEnvAsInt("BACKEND_RETRIES", DefaultBackendRetries),

		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		SearchCacheTTL: getEnvAsDuration("SEARCH_CACHE_TTL", DefaultSearchCacheTTL),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),

		DraftSessionTTL:    getEnvAsDuration("DRAFT_SESSION_TTL", DefaultSessionTTL),
		DraftSessionLimit:  getEnvAsInt("DRAFT_SESSION_LIMIT", DefaultSessionLimit),
		SearchSessionTTL:   getEnvAsDuration("SEARCH_SESSION_TTL", DefaultSessionTTL),
		SearchSessionLimit: getEnvAsInt("SEARCH_SESSION_LIMIT", DefaultSessionLimit),
		SubmitWorkers:      getEnvAsInt("SUBMIT_WORKERS", DefaultSubmitWorkers),
		SubmitQueueSize:    getEnvAsInt("SUBMIT_QUEUE_SIZE", DefaultSubmitQueueSize),

		PopularDecayInterval: getEnvAsDuration("POPULAR_DECAY_INTERVAL", DefaultPopularDecayInterval),

		CatalogPath:   getEnv("CATALOG_PATH", ""),
		CatalogStrict: getEnvAsBool("CATALOG_STRICT", true),

		EventMaxRetries: getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay: getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		DeadLetterPath:  getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.Backend {
	case BackendMemory, BackendPostgres:
	case BackendHTTP:
		if cfg.BackendURL == "" {
			return nil, fmt.Errorf("BACKEND_URL must be set when BACKEND=%s", BackendHTTP)
		}
	default:
		return nil, fmt.Errorf("invalid BACKEND value %q: expected %s, %s or %s",
			cfg.Backend, BackendMemory, BackendPostgres, BackendHTTP)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var structValidator = validator.New()

// Validate range-checks the loaded values. Each failing field is reported by name.
func (c *Config) Validate() error {
	err := structValidator.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s fails %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default for missing or malformed values
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration falls back to the default for missing or malformed values
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsBool falls back to the default for missing or malformed values
func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
