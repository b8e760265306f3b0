package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgOptionNotFound         = "option not found"
	ErrMsgExhibitionNotFound     = "exhibition item not found"
	ErrMsgReinforceTableNotFound = "reinforce table not found"
	ErrMsgInvalidCatalog         = "invalid catalog"

	// Roll errors
	ErrMsgEmptyPool = "no valid options to roll"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Reinforcement errors
	ErrMsgMaxReinforce = "maximum reinforcement reached"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrOptionNotFound         = errors.New(ErrMsgOptionNotFound)
	ErrExhibitionNotFound     = errors.New(ErrMsgExhibitionNotFound)
	ErrReinforceTableNotFound = errors.New(ErrMsgReinforceTableNotFound)
	ErrInvalidCatalog         = errors.New(ErrMsgInvalidCatalog)

	ErrEmptyPool = errors.New(ErrMsgEmptyPool)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrMaxReinforce = errors.New(ErrMsgMaxReinforce)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
