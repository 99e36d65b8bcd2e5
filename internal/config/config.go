package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // optional; empty disables API key auth
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int

	// Profile storage
	StoreDriver   string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	// Item database
	ItemDBURL         string
	ItemDBGame        string
	ItemDBLanguage    string
	ItemDBTimeout     time.Duration
	ItemDBRPS         float64
	ItemDBBurst       int
	ItemCacheSize     int
	ItemCacheTTL      time.Duration
	ItemDBConcurrency int

	// Screenshot import; empty command disables it
	SalesExtractorCmd     string
	SalesExtractorTimeout time.Duration

	// Background persistence
	PersistWorkers   int
	PersistQueueSize int

	// Idle crafting sessions are saved and unloaded; zero TTL disables the sweep
	SessionIdleTTL       time.Duration
	SessionSweepInterval time.Duration

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", "dev"),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_NAME", "craftplanner"),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdle: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdle),
		DBMaxConnLife: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLife),

		ItemDBURL:         getEnv("ITEM_DB_URL", DefaultItemDBURL),
		ItemDBGame:        getEnv("ITEM_DB_GAME", DefaultItemDBGame),
		ItemDBLanguage:    strings.ToLower(getEnv("ITEM_DB_LANGUAGE", DefaultItemDBLanguage)),
		ItemDBTimeout:     getEnvAsDuration("ITEM_DB_TIMEOUT", DefaultItemDBTimeout),
		ItemDBRPS:         getEnvAsFloat("ITEM_DB_RPS", DefaultItemDBRPS),
		ItemDBBurst:       getEnvAsInt("ITEM_DB_BURST", DefaultItemDBBurst),
		ItemCacheSize:     getEnvAsInt("ITEM_CACHE_SIZE", DefaultItemCacheSize),
		ItemCacheTTL:      getEnvAsDuration("ITEM_CACHE_TTL", DefaultItemCacheTTL),
		ItemDBConcurrency: getEnvAsInt("ITEM_DB_CONCURRENCY", DefaultItemDBConcurrency),

		SalesExtractorCmd:     getEnv("SALES_EXTRACTOR_CMD", ""),
		SalesExtractorTimeout: getEnvAsDuration("SALES_EXTRACTOR_TIMEOUT", DefaultSalesExtractorTimeout),

		PersistWorkers:   getEnvAsInt("PERSIST_WORKERS", DefaultPersistWorkers),
		PersistQueueSize: getEnvAsInt("PERSIST_QUEUE_SIZE", DefaultPersistQueueSize),

		SessionIdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", DefaultSessionIdleTTL),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", DefaultSessionSweepInterval),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverMemory, StoreDriverPostgres, c.StoreDriver)
	}
	if !slices.Contains(SupportedLanguages, c.ItemDBLanguage) {
		return fmt.Errorf("ITEM_DB_LANGUAGE must be one of %s, got %q", strings.Join(SupportedLanguages, ", "), c.ItemDBLanguage)
	}
	if c.PersistWorkers < 1 {
		return fmt.Errorf("PERSIST_WORKERS must be at least 1, got %d", c.PersistWorkers)
	}
	if c.PersistQueueSize < 0 {
		return fmt.Errorf("PERSIST_QUEUE_SIZE cannot be negative, got %d", c.PersistQueueSize)
	}
	if c.SessionIdleTTL > 0 && c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive when SESSION_IDLE_TTL is set")
	}
	return nil
}

// UsesPostgres reports whether profiles are stored in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StoreDriver == StoreDriverPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration such as "30s" or "5m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
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
