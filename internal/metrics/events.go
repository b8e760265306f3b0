package metrics

import (
	"context"
	"strconv"

	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every simulator event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are logged and skipped so metrics never fail a request.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.AffixRolled:
		err = recordAffixRolled(evt.Payload)
	case event.AffixPoolEmpty:
		AffixEmptyPool.Inc()
	case event.SessionReset:
		SessionResets.Inc()
	case event.GearScoreCalculated:
		err = recordGearScore(evt.Payload)
	case event.ReinforceAttempted:
		err = recordReinforceAttempt(evt.Payload)
	case event.ReinforceSimulated:
		err = recordReinforceSimulation(evt.Payload)
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordAffixRolled(payload interface{}) error {
	p, err := event.DecodePayload[event.AffixRolledPayloadV1](payload)
	if err != nil {
		return err
	}
	AffixRolls.WithLabelValues(strconv.Itoa(p.ExhibitionID)).Inc()
	for _, id := range p.OptionIDs {
		AffixOptionsRolled.WithLabelValues(strconv.Itoa(id)).Inc()
	}
	return nil
}

func recordGearScore(payload interface{}) error {
	p, err := event.DecodePayload[event.GearScoreCalculatedPayloadV1](payload)
	if err != nil {
		return err
	}
	GearScoreCalculations.WithLabelValues(p.SlotType).Inc()
	return nil
}

func recordReinforceAttempt(payload interface{}) error {
	p, err := event.DecodePayload[event.ReinforceAttemptedPayloadV1](payload)
	if err != nil {
		return err
	}
	outcome := OutcomeFailure
	if p.Success {
		outcome = OutcomeSuccess
	}
	ReinforceAttempts.WithLabelValues(outcome).Inc()
	return nil
}

func recordReinforceSimulation(payload interface{}) error {
	p, err := event.DecodePayload[event.ReinforceSimulatedPayloadV1](payload)
	if err != nil {
		return err
	}
	ReinforceSimulations.Inc()
	ReinforceSimulationDuration.Observe(p.Duration.Seconds())
	return nil
}
