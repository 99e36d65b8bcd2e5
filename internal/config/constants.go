package config

import "time"

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultPort        = 8080
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "craft-planner"
	DefaultStoreDriver = StoreDriverMemory

	DefaultDBMaxConns    = 10
	DefaultDBMaxConnIdle = 5 * time.Minute
	DefaultDBMaxConnLife = time.Hour

	DefaultItemDBURL         = "https://api.dofusdu.de"
	DefaultItemDBGame        = "dofus3"
	DefaultItemDBLanguage    = "fr"
	DefaultItemDBTimeout     = 10 * time.Second
	DefaultItemDBRPS         = 10.0
	DefaultItemDBBurst       = 10
	DefaultItemCacheSize     = 2000
	DefaultItemCacheTTL      = 30 * time.Minute
	DefaultItemDBConcurrency = 8

	DefaultSalesExtractorTimeout = time.Minute

	DefaultPersistWorkers   = 2
	DefaultPersistQueueSize = 256

	DefaultSessionIdleTTL       = 2 * time.Hour
	DefaultSessionSweepInterval = 10 * time.Minute

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40

	DefaultShutdownTimeout = 10 * time.Second
)

// Languages served by the item database
var SupportedLanguages = []string{"fr", "en", "de", "es", "pt"}
