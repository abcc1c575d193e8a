package common

import "errors"

// Malformed-input errors are fatal for the whole run (§7): they indicate a
// corrupt feed, not a business-level reject.
var (
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidQuantity = errors.New("invalid quantity")
)
