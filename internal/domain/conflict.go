package domain

import (
	"fmt"
	"strings"
)

// ConflictPolicy decides what an insert does when it collides with a uniqueness constraint
type ConflictPolicy int

const (
	// ConflictThrow lets the constraint violation surface to the caller
	ConflictThrow ConflictPolicy = iota
	// ConflictUpdate overwrites the mutable columns of the existing row
	ConflictUpdate
	// ConflictIgnore keeps the existing row and reports success
	ConflictIgnore
)

// String returns the policy name
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictThrow:
		return "throw"
	case ConflictUpdate:
		return "update"
	case ConflictIgnore:
		return "do nothing"
	default:
		return fmt.Sprintf("ConflictPolicy(%d)", int(p))
	}
}

// Valid checks if the policy is one of the declared values
func (p ConflictPolicy) Valid() bool {
	return p == ConflictThrow || p == ConflictUpdate || p == ConflictIgnore
}

// ParseConflictPolicy parses a policy name. Both "do nothing" and "ignore" map to ConflictIgnore.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "throw":
		return ConflictThrow, nil
	case "update":
		return ConflictUpdate, nil
	case "do nothing", "do-nothing", "ignore":
		return ConflictIgnore, nil
	default:
		return ConflictThrow, fmt.Errorf("%w: %q", ErrInvalidConflictPolicy, s)
	}
}
