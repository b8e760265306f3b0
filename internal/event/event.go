package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Simulator event types
const (
	AffixRolled         Type = "affix.rolled"
	AffixPoolEmpty      Type = "affix.pool_empty"
	SessionReset        Type = "session.reset"
	GearScoreCalculated Type = "gearscore.calculated"
	ReinforceAttempted  Type = "reinforce.attempted"
	ReinforceSimulated  Type = "reinforce.simulated"
)

// AllTypes lists every event type published by the simulator services
var AllTypes = []Type{
	AffixRolled,
	AffixPoolEmpty,
	SessionReset,
	GearScoreCalculated,
	ReinforceAttempted,
	ReinforceSimulated,
}

// Typed event payloads for type safety

// AffixRolledPayloadV1 is the typed payload for one completed roll
type AffixRolledPayloadV1 struct {
	ExhibitionID int    `json:"exhibition_id"`
	OptionIDs    []int  `json:"option_ids"`
	SessionID    string `json:"session_id,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}

// AffixPoolEmptyPayloadV1 is published when an exhibition has nothing to roll
type AffixPoolEmptyPayloadV1 struct {
	ExhibitionID int `json:"exhibition_id"`
}

// SessionResetPayloadV1 is the typed payload for session reset events
type SessionResetPayloadV1 struct {
	SessionID string `json:"session_id"`
	Rolls     int    `json:"rolls"`
}

// GearScoreCalculatedPayloadV1 is the typed payload for gear score events
type GearScoreCalculatedPayloadV1 struct {
	SlotType string `json:"slot_type"`
	Score    int    `json:"score"`
}

// ReinforceAttemptedPayloadV1 is the typed payload for a single reinforcement attempt
type ReinforceAttemptedPayloadV1 struct {
	EquipmentLevel int  `json:"equipment_level"`
	Step           int  `json:"step"`
	Probability    int  `json:"probability"`
	Success        bool `json:"success"`
}

// ReinforceSimulatedPayloadV1 is the typed payload for a finished Monte Carlo batch
type ReinforceSimulatedPayloadV1 struct {
	EquipmentLevel int           `json:"equipment_level"`
	TargetStep     int           `json:"target_step"`
	Trials         int           `json:"trials"`
	Duration       time.Duration `json:"duration"`
}

// Type-safe event constructors

// NewAffixRolledEvent creates a new roll event
func NewAffixRolledEvent(exhibitionID int, optionIDs []int, sessionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AffixRolled,
		Payload: AffixRolledPayloadV1{
			ExhibitionID: exhibitionID,
			OptionIDs:    optionIDs,
			SessionID:    sessionID,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewAffixPoolEmptyEvent creates a new empty pool event
func NewAffixPoolEmptyEvent(exhibitionID int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AffixPoolEmpty,
		Payload: AffixPoolEmptyPayloadV1{ExhibitionID: exhibitionID},
	}
}

// NewSessionResetEvent creates a new session reset event
func NewSessionResetEvent(sessionID string, rolls int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SessionReset,
		Payload: SessionResetPayloadV1{
			SessionID: sessionID,
			Rolls:     rolls,
		},
		Metadata: map[string]interface{}{
			"session_id": sessionID,
		},
	}
}

// NewGearScoreCalculatedEvent creates a new gear score event
func NewGearScoreCalculatedEvent(slotType string, score int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GearScoreCalculated,
		Payload: GearScoreCalculatedPayloadV1{
			SlotType: slotType,
			Score:    score,
		},
	}
}

// NewReinforceAttemptedEvent creates a new reinforcement attempt event
func NewReinforceAttemptedEvent(equipmentLevel, step, probability int, success bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReinforceAttempted,
		Payload: ReinforceAttemptedPayloadV1{
			EquipmentLevel: equipmentLevel,
			Step:           step,
			Probability:    probability,
			Success:        success,
		},
	}
}

// NewReinforceSimulatedEvent creates a new Monte Carlo completion event
func NewReinforceSimulatedEvent(equipmentLevel, targetStep, trials int, duration time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ReinforceSimulated,
		Payload: ReinforceSimulatedPayloadV1{
			EquipmentLevel: equipmentLevel,
			TargetStep:     targetStep,
			Trials:         trials,
			Duration:       duration,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
