package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/config"
	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/event"
)

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:                8080,
		LogLevel:            "debug",
		LogFormat:           "json",
		LogDir:              filepath.Join(t.TempDir(), "logs"),
		Environment:         "dev",
		ServiceName:         "tos-fronet-sim-test",
		Version:             "test",
		CatalogPath:         "../../configs/catalog.json",
		SessionCacheSize:    10,
		SessionTTL:          time.Minute,
		MaxRollCount:        10,
		SimulationWorkers:   2,
		MaxSimulationTrials: 100,
		RateLimitRequests:   0,
		RateLimitWindow:     time.Minute,
	}
}

func TestSetupLogger(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)

	var stdout bytes.Buffer
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	logFile, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)

	slog.Info("hello from test")
	require.NoError(t, logFile.Close())

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2026-03-01_12-00-00.log"), logFile.Name())

	contents, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(contents), "hello from test")
	assert.Contains(t, string(contents), `"service":"tos-fronet-sim-test"`)
	assert.Contains(t, stdout.String(), "hello from test")
	assert.Contains(t, stdout.String(), LogMsgConfigurationLoaded, "debug level is honoured")
}

func TestSetupLogger_BadDirectory(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.LogDir = filepath.Join(blocker, "logs")

	_, err := SetupLogger(cfg)
	assert.ErrorContains(t, err, LogMsgFailedCreateLogsDir)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2026-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2026-01-01_00-00-00.log", "oldest logs are removed first")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
}

func TestLoadCatalog(t *testing.T) {
	t.Run("bundled catalog", func(t *testing.T) {
		cat, err := LoadCatalog(testConfig(t))
		require.NoError(t, err)
		assert.NotEmpty(t, cat.Checksum())
		assert.NotEmpty(t, cat.Exhibitions())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.json")

		_, err := LoadCatalog(cfg)
		assert.ErrorContains(t, err, ErrMsgFailedLoadCatalog)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CatalogPath = filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(cfg.CatalogPath, []byte(`{
  "version": "1.0",
  "options": [{"id": 1, "grade": 1, "weight": 1, "min_value": 5, "max_value": 1, "kind": "flat", "description_key": "max_hp"}],
  "exhibitions": [],
  "reinforce_tables": []
}`), 0644))

		_, err := LoadCatalog(cfg)
		assert.True(t, errors.Is(err, domain.ErrInvalidCatalog))
	})
}

func TestInitializeServicesAndServer(t *testing.T) {
	cfg := testConfig(t)
	cat, err := LoadCatalog(cfg)
	require.NoError(t, err)

	bus := InitializeEventSystem()
	require.NoError(t, RegisterEventHandlers(bus))

	svcs := InitializeServices(cfg, cat, bus)
	require.NotNil(t, svcs.Affix)
	require.NotNil(t, svcs.GearScore)
	require.NotNil(t, svcs.Reinforce)

	batch, err := svcs.Affix.Roll(context.Background(), 1, affixOptions("boot"))
	require.NoError(t, err)
	assert.Equal(t, "boot", batch.SessionID)
	assert.Equal(t, 1, svcs.Sessions.Len())

	srv := NewServer(cfg, cat, svcs)
	require.NotNil(t, srv.Handler())

	GracefulShutdown(context.Background(), ShutdownComponents{Server: srv})
}

func TestRegisterEventHandlers_SubscribesEveryType(t *testing.T) {
	bus := &recordingBus{}

	require.NoError(t, RegisterEventHandlers(bus))

	assert.ElementsMatch(t, event.AllTypes, bus.subscribed)
}

type recordingBus struct {
	subscribed []event.Type
}

func (b *recordingBus) Publish(ctx context.Context, evt event.Event) error { return nil }

func (b *recordingBus) Subscribe(eventType event.Type, handler event.Handler) {
	b.subscribed = append(b.subscribed, eventType)
}

type closeRecorder struct{ closed bool }

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestGracefulShutdown_ClosesLogFile(t *testing.T) {
	rec := &closeRecorder{}

	GracefulShutdown(context.Background(), ShutdownComponents{LogFile: rec})

	assert.True(t, rec.closed)
}

func affixOptions(sessionID string) affix.RollOptions {
	seed := uint64(1)
	return affix.RollOptions{Count: 2, Seed: &seed, SessionID: sessionID}
}
