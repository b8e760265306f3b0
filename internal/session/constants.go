package session

import "time"

// Defaults used when the store is created with zero values
const (
	DefaultCacheSize = 10000
	DefaultTTL       = 24 * time.Hour
	DefaultStripes   = 256
)

// Log messages
const (
	LogMsgSessionCreated = "Session created"
	LogMsgSessionReset   = "Session reset"
)
