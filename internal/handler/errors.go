package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s"

	// Catalog error messages
	ErrMsgListExhibitionsFailed = "Failed to list exhibition items"
	ErrMsgGetOptionPoolFailed   = "Failed to get option pool"

	// Affix error messages
	ErrMsgRollFailed         = "Failed to roll options"
	ErrMsgPreviewFailed      = "Failed to compute preview"
	ErrMsgGetSessionFailed   = "Failed to get session statistics"
	ErrMsgResetSessionFailed = "Failed to reset session"

	// Gear score error messages
	ErrMsgScoreItemFailed  = "Failed to score item"
	ErrMsgScoreTotalFailed = "Failed to score loadout"

	// Reinforcement error messages
	ErrMsgProbabilityFailed = "Failed to compute reinforcement probability"
	ErrMsgSimulateFailed    = "Failed to simulate reinforcement"
)

// Success messages for API responses
const (
	MsgSessionResetSuccess = "Session statistics reset"
)
