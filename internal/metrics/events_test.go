package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21in7/tos-fronet-sub000/internal/event"
)

func TestEventMetricsCollector_AffixRolled(t *testing.T) {
	c := NewEventMetricsCollector()
	rolls := testutil.ToFloat64(AffixRolls.WithLabelValues("901"))
	opt := testutil.ToFloat64(AffixOptionsRolled.WithLabelValues("9011"))

	err := c.HandleEvent(context.Background(), event.NewAffixRolledEvent(901, []int{9011, 9012}, ""))

	require.NoError(t, err)
	assert.Equal(t, rolls+1, testutil.ToFloat64(AffixRolls.WithLabelValues("901")))
	assert.Equal(t, opt+1, testutil.ToFloat64(AffixOptionsRolled.WithLabelValues("9011")))
}

func TestEventMetricsCollector_Counters(t *testing.T) {
	c := NewEventMetricsCollector()
	ctx := context.Background()

	tests := []struct {
		name  string
		evt   event.Event
		value func() float64
	}{
		{
			name:  "empty pool",
			evt:   event.NewAffixPoolEmptyEvent(3),
			value: func() float64 { return testutil.ToFloat64(AffixEmptyPool) },
		},
		{
			name:  "session reset",
			evt:   event.NewSessionResetEvent("abc", 4),
			value: func() float64 { return testutil.ToFloat64(SessionResets) },
		},
		{
			name:  "gear score",
			evt:   event.NewGearScoreCalculatedEvent("seal", 525),
			value: func() float64 { return testutil.ToFloat64(GearScoreCalculations.WithLabelValues("seal")) },
		},
		{
			name:  "reinforce success",
			evt:   event.NewReinforceAttemptedEvent(460, 3, 50000, true),
			value: func() float64 { return testutil.ToFloat64(ReinforceAttempts.WithLabelValues(OutcomeSuccess)) },
		},
		{
			name:  "reinforce failure",
			evt:   event.NewReinforceAttemptedEvent(460, 3, 50000, false),
			value: func() float64 { return testutil.ToFloat64(ReinforceAttempts.WithLabelValues(OutcomeFailure)) },
		},
		{
			name:  "simulation",
			evt:   event.NewReinforceSimulatedEvent(460, 10, 1000, 30*time.Millisecond),
			value: func() float64 { return testutil.ToFloat64(ReinforceSimulations) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.value()
			published := testutil.ToFloat64(EventsPublished.WithLabelValues(string(tt.evt.Type)))

			require.NoError(t, c.HandleEvent(ctx, tt.evt))

			assert.Equal(t, before+1, tt.value())
			assert.Equal(t, published+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(tt.evt.Type))))
		})
	}
}

func TestEventMetricsCollector_BadPayloadIsIgnored(t *testing.T) {
	c := NewEventMetricsCollector()
	before := testutil.ToFloat64(GearScoreCalculations.WithLabelValues("weapon"))

	err := c.HandleEvent(context.Background(), event.Event{Type: event.GearScoreCalculated, Payload: "not a payload"})

	assert.NoError(t, err)
	assert.Equal(t, before, testutil.ToFloat64(GearScoreCalculations.WithLabelValues("weapon")))
}

func TestEventMetricsCollector_Register(t *testing.T) {
	bus := event.NewMemoryBus()
	c := NewEventMetricsCollector()
	require.NoError(t, c.Register(bus))
	before := testutil.ToFloat64(SessionResets)

	require.NoError(t, bus.Publish(context.Background(), event.NewSessionResetEvent("xyz", 1)))

	assert.Equal(t, before+1, testutil.ToFloat64(SessionResets))
}
