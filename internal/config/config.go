package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/21in7/tos-fronet-sub000/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Static data
	CatalogPath string

	// Affix sessions
	SessionCacheSize int
	SessionTTL       time.Duration
	MaxRollCount     int

	// Reinforcement simulation
	SimulationWorkers   int
	MaxSimulationTrials int

	// HTTP
	TrustedProxies    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:           getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:              getEnv(EnvLogDir, DefaultLogDir),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:         getEnv(EnvServiceName, DefaultServiceName),
		Version:             getEnv(EnvVersion, DefaultVersion),
		CatalogPath:         getEnv(EnvCatalogPath, ConfigPathCatalog),
		SessionCacheSize:    getEnvAsInt(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:          getEnvAsDuration(EnvSessionTTL, DefaultSessionTTL),
		MaxRollCount:        getEnvAsInt(EnvMaxRollCount, DefaultMaxRollCount),
		SimulationWorkers:   getEnvAsInt(EnvSimulationWorkers, DefaultSimulationWorkers),
		MaxSimulationTrials: getEnvAsInt(EnvMaxSimulationTrials, DefaultMaxSimulationTrials),
		TrustedProxies:      getEnvAsList(EnvTrustedProxies),
		RateLimitRequests:   getEnvAsInt(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:     getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges, reporting every problem at once
func (c *Config) Validate() error {
	var problems []string
	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		problems = append(problems, "CATALOG_PATH must not be empty")
	}
	if c.SessionCacheSize < 1 {
		problems = append(problems, "SESSION_CACHE_SIZE must be positive")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.MaxRollCount < 1 {
		problems = append(problems, "MAX_ROLL_COUNT must be positive")
	}
	if c.SimulationWorkers < 1 {
		problems = append(problems, "SIMULATION_WORKERS must be positive")
	}
	if c.MaxSimulationTrials < 1 {
		problems = append(problems, "MAX_SIMULATION_TRIALS must be positive")
	}
	if c.RateLimitRequests < 0 {
		problems = append(problems, "RATE_LIMIT_REQUESTS must not be negative")
	}
	switch c.Environment {
	case logger.EnvironmentDev, environmentDevelopment, logger.EnvironmentStaging, logger.EnvironmentProduction:
	default:
		problems = append(problems, fmt.Sprintf("ENVIRONMENT must be one of %s, %s or %s, got %q",
			logger.EnvironmentDev, logger.EnvironmentStaging, logger.EnvironmentProduction, c.Environment))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == logger.EnvironmentDev || c.Environment == environmentDevelopment
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
