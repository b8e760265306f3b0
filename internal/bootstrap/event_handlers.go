package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers.
// Today that is the metrics collector, which turns simulator events into
// Prometheus counters.
func RegisterEventHandlers(eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
