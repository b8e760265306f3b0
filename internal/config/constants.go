package config

import "time"

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.json"
)

// Defaults for optional settings
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultLogDir              = "logs"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "tos-fronet-sim"
	DefaultVersion             = "dev"
	DefaultSessionCacheSize    = 10000
	DefaultSessionTTL          = 24 * time.Hour
	DefaultSimulationWorkers   = 4
	DefaultMaxSimulationTrials = 100000
	DefaultMaxRollCount        = 1000
	DefaultRateLimitRequests   = 120
	DefaultRateLimitWindow     = time.Minute
)

// environmentDevelopment is accepted as a long form of logger.EnvironmentDev
const environmentDevelopment = "development"

// Environment variable names
const (
	EnvPort                = "PORT"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvLogDir              = "LOG_DIR"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvCatalogPath         = "CATALOG_PATH"
	EnvSessionCacheSize    = "SESSION_CACHE_SIZE"
	EnvSessionTTL          = "SESSION_TTL"
	EnvSimulationWorkers   = "SIMULATION_WORKERS"
	EnvMaxSimulationTrials = "MAX_SIMULATION_TRIALS"
	EnvMaxRollCount        = "MAX_ROLL_COUNT"
	EnvTrustedProxies      = "TRUSTED_PROXIES"
	EnvRateLimitRequests   = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow     = "RATE_LIMIT_WINDOW"
	EnvSchemaVersion       = "ENV_SCHEMA_VERSION"
)
