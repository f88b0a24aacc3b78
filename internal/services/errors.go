package services

import "errors"

// Workflow sentinel errors, mapped to HTTP statuses at the handler boundary.
var (
	// ErrValidation marks a rejected input (missing required field,
	// non-positive quantity). Nothing is written when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition marks a status change the state machine forbids,
	// including any transition out of a terminal state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInsufficientStock marks a dispense attempt that would drive a
	// medicine's stock negative. No line is decremented.
	ErrInsufficientStock = errors.New("insufficient medicine stock")

	// ErrAlreadyDispensed marks a dispense attempt on a prescription that is
	// no longer pending. Stock is untouched.
	ErrAlreadyDispensed = errors.New("prescription already dispensed")
)
