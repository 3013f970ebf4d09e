package domain

import "errors"

var (
	// ErrConfigNotInitialized is returned when the structure store has no config row
	ErrConfigNotInitialized = errors.New("config table need to be initialized")

	// ErrConstraintViolation is returned when an insert hits a unique or foreign key constraint
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidConflictPolicy is returned for an unknown conflict policy value
	ErrInvalidConflictPolicy = errors.New("invalid conflict policy")

	// ErrInvalidInput is returned when a caller supplied argument cannot be used
	ErrInvalidInput = errors.New("invalid input")
)
