package bootstrap

import (
	"log/slog"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/catalog"
	"github.com/21in7/tos-fronet-sub000/internal/config"
	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/gearscore"
	"github.com/21in7/tos-fronet-sub000/internal/reinforce"
	"github.com/21in7/tos-fronet-sub000/internal/server"
	"github.com/21in7/tos-fronet-sub000/internal/session"
)

// Services holds the application services built on top of the catalog
type Services struct {
	Affix     affix.Service
	GearScore gearscore.Service
	Reinforce reinforce.Service
	Sessions  *session.Store
}

// InitializeServices wires every service to the catalog and event bus
func InitializeServices(cfg *config.Config, cat *catalog.Catalog, eventBus event.Bus) *Services {
	sessions := session.NewStore(cfg.SessionCacheSize, cfg.SessionTTL)

	svcs := &Services{
		Affix:     affix.NewService(cat, sessions, eventBus, cfg.MaxRollCount),
		GearScore: gearscore.NewService(cat, eventBus),
		Reinforce: reinforce.NewService(cat, eventBus, reinforce.Config{
			Workers:   cfg.SimulationWorkers,
			MaxTrials: cfg.MaxSimulationTrials,
		}),
		Sessions: sessions,
	}

	slog.Info(LogMsgServicesInitialized,
		"session_cache_size", cfg.SessionCacheSize,
		"session_ttl", cfg.SessionTTL,
		"max_roll_count", cfg.MaxRollCount,
		"simulation_workers", cfg.SimulationWorkers)

	return svcs
}

// NewServer builds the HTTP server for the configured port
func NewServer(cfg *config.Config, cat *catalog.Catalog, svcs *Services) *server.Server {
	limiter := server.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	return server.NewServer(cfg.Port, cfg.TrustedProxies, limiter, cat, svcs.Affix, svcs.GearScore, svcs.Reinforce)
}
