package tracker

import "errors"

// Rejections surfaced to the user. Every rejected call leaves the store
// exactly as it was.
var (
	// ErrEmptyGoal means the goal text was blank after trimming whitespace
	ErrEmptyGoal = errors.New("goal must not be empty")

	// ErrInvalidDeadline means the deadline text did not parse as a date-time
	ErrInvalidDeadline = errors.New("deadline is not a valid date and time")

	// ErrPastDeadline means the deadline was not strictly in the future
	ErrPastDeadline = errors.New("deadline must be in the future")

	// ErrInvalidMode means the display mode was not a recognized value
	ErrInvalidMode = errors.New("unknown display mode")
)
