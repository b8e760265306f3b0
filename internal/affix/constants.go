package affix

// ============================================================================
// Sampling
// ============================================================================

// MinUniformDraw replaces non-positive uniform draws so the sort key U^(1/w) stays defined
const MinUniformDraw = 1e-5

// MagnitudeDecimalPlaces is the display precision of continuous magnitudes
const MagnitudeDecimalPlaces = 2

// ============================================================================
// Preview
// ============================================================================

// Number of target groups supported by the all-groups preview
const (
	MinAllGroupsTargets = 2
	MaxAllGroupsTargets = 3
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEmptyPool        = "Exhibition has no valid options to roll"
	LogMsgRollCompleted    = "Affix roll completed"
	LogMsgPublishFailed    = "Failed to publish affix event"
	LogMsgSessionReset     = "Roll session reset"
	LogMsgSessionRecording = "Recording rolls to session"
)

// Log field keys for structured logging
const (
	LogFieldExhibition = "exhibition_id"
	LogFieldCount      = "count"
	LogFieldSeeded     = "seeded"
	LogFieldError      = "error"
)
