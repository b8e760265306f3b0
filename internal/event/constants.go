package event

// EventSchemaVersion is stamped on every event built by the New*Event helpers
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat wraps the errors collected while fanning out one event
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
