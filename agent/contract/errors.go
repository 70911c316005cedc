package contract

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	// ErrInventoryUnavailable marks a collaborator failure: the only true
	// fault in the turn flow. The session is left untouched on this path.
	ErrInventoryUnavailable = errors.New("inventory store unavailable")
)
