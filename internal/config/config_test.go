package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	EnvPort, EnvLogLevel, EnvLogFormat, EnvLogDir, EnvEnvironment, EnvServiceName, EnvVersion,
	EnvCatalogPath, EnvSessionCacheSize, EnvSessionTTL, EnvSimulationWorkers, EnvMaxSimulationTrials,
	EnvMaxRollCount, EnvTrustedProxies, EnvRateLimitRequests, EnvRateLimitWindow, EnvSchemaVersion,
}

// clearEnvVars unsets every variable the config reads and restores it afterwards
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, ConfigPathCatalog, cfg.CatalogPath)
		assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
		assert.Equal(t, DefaultSimulationWorkers, cfg.SimulationWorkers)
		assert.Nil(t, cfg.TrustedProxies)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvCatalogPath, "configs/catalog.example.yaml")
		t.Setenv(EnvSessionCacheSize, "50")
		t.Setenv(EnvSessionTTL, "30m")
		t.Setenv(EnvSimulationWorkers, "8")
		t.Setenv(EnvMaxSimulationTrials, "5000")
		t.Setenv(EnvMaxRollCount, "10")
		t.Setenv(EnvTrustedProxies, "10.0.0.1, 10.0.0.2,")
		t.Setenv(EnvRateLimitWindow, "10s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "configs/catalog.example.yaml", cfg.CatalogPath)
		assert.Equal(t, 50, cfg.SessionCacheSize)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 8, cfg.SimulationWorkers)
		assert.Equal(t, 5000, cfg.MaxSimulationTrials)
		assert.Equal(t, 10, cfg.MaxRollCount)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 10*time.Second, cfg.RateLimitWindow)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("reports every out of range value", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "70000")
		t.Setenv(EnvSimulationWorkers, "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PORT must be between")
		assert.Contains(t, err.Error(), "SIMULATION_WORKERS must be positive")
	})

	t.Run("environment names", func(t *testing.T) {
		tests := []struct {
			env     string
			wantErr bool
			isDev   bool
		}{
			{env: "dev", isDev: true},
			{env: "development", isDev: true},
			{env: "staging"},
			{env: "prod"},
			{env: "production", wantErr: true},
			{env: "qa", wantErr: true},
		}

		for _, tt := range tests {
			t.Run(tt.env, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(EnvEnvironment, tt.env)

				cfg, err := Load()

				if tt.wantErr {
					require.Error(t, err)
					assert.Contains(t, err.Error(), "ENVIRONMENT must be one of dev, staging or prod")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.isDev, cfg.IsDevelopment())
			})
		}
	})
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "valid", value: "100", want: 100},
		{name: "negative", value: "-10", want: -10},
		{name: "invalid falls back", value: "not-a-number", want: 42},
		{name: "float falls back", value: "42.5", want: 42},
		{name: "empty falls back", value: "", want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION_VAR", "1h30m")
	assert.Equal(t, 90*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Second))

	t.Setenv("TEST_DURATION_VAR", "soon")
	assert.Equal(t, time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Second))
}
