package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)

	// No client label; the set of IPs is unbounded
	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	AffixRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAffixRolls,
			Help: HelpTextAffixRolls,
		},
		[]string{LabelExhibition},
	)

	AffixOptionsRolled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAffixOptionsRolled,
			Help: HelpTextAffixOptionsRolled,
		},
		[]string{LabelOption},
	)

	AffixEmptyPool = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAffixEmptyPool,
			Help: HelpTextAffixEmptyPool,
		},
	)

	SessionResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionResets,
			Help: HelpTextSessionResets,
		},
	)

	GearScoreCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGearScoreCalculations,
			Help: HelpTextGearScoreCalculations,
		},
		[]string{LabelSlot},
	)

	ReinforceAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReinforceAttempts,
			Help: HelpTextReinforceAttempts,
		},
		[]string{LabelOutcome},
	)

	ReinforceSimulations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReinforceSimulations,
			Help: HelpTextReinforceSimulations,
		},
	)

	ReinforceSimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameReinforceSimDuration,
			Help:    HelpTextReinforceSimDuration,
			Buckets: SimulationDurationBuckets,
		},
	)
)
