package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks that the .env schema version matches expectations.
// Every other variable has a default, so none is strictly required.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like settings that are unsafe outside development)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	env := getEnv(EnvEnvironment, DefaultEnvironment)
	if env == "prod" && getEnv(EnvLogLevel, DefaultLogLevel) == "debug" {
		warnings = append(warnings, "LOG_LEVEL=debug in production logs every roll - consider info")
	}

	if os.Getenv(EnvRateLimitRequests) == "0" {
		warnings = append(warnings, "RATE_LIMIT_REQUESTS=0 disables rate limiting")
	}

	if getEnvAsInt(EnvMaxSimulationTrials, DefaultMaxSimulationTrials) > 10*DefaultMaxSimulationTrials {
		warnings = append(warnings, "MAX_SIMULATION_TRIALS is very large - a single request may hold all simulation workers for a long time")
	}

	return warnings, nil
}
