package bootstrap

import (
	"log/slog"

	"github.com/21in7/tos-fronet-sub000/internal/event"
)

// InitializeEventSystem creates the in-process event bus shared by the services
func InitializeEventSystem() event.Bus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes))
	return eventBus
}
