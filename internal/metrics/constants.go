package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_rate_limited_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameAffixRolls            = "affix_rolls_total"
	MetricNameAffixOptionsRolled    = "affix_options_rolled_total"
	MetricNameAffixEmptyPool        = "affix_empty_pool_total"
	MetricNameSessionResets         = "session_resets_total"
	MetricNameGearScoreCalculations = "gearscore_calculations_total"
	MetricNameReinforceAttempts     = "reinforce_attempts_total"
	MetricNameReinforceSimulations  = "reinforce_simulations_total"
	MetricNameReinforceSimDuration  = "reinforce_simulation_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of requests rejected by the per-IP rate limiter"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextAffixRolls            = "Total number of affix rolls per exhibition item"
	HelpTextAffixOptionsRolled    = "Total number of times each option was selected"
	HelpTextAffixEmptyPool        = "Total number of roll requests against an empty option pool"
	HelpTextSessionResets         = "Total number of session statistic resets"
	HelpTextGearScoreCalculations = "Total number of gear score calculations per slot"
	HelpTextReinforceAttempts     = "Total number of simulated reinforcement attempts by outcome"
	HelpTextReinforceSimulations  = "Total number of Monte Carlo reinforcement batches"
	HelpTextReinforceSimDuration  = "Wall time of Monte Carlo reinforcement batches in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelExhibition = "exhibition"
	LabelOption     = "option"
	LabelSlot       = "slot"
	LabelOutcome    = "outcome"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// PathUnmatched labels requests no route matched, keeping path cardinality bounded
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SimulationDurationBuckets spans quick seeded batches up to multi-second runs
var SimulationDurationBuckets = []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
