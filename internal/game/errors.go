package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPrimaryVessel is returned when player input arrives but no vessel is primary.
	ErrNoPrimaryVessel = errors.New("no primary vessel")
	// ErrVesselNotFound is returned for handles that do not name a live body.
	ErrVesselNotFound = errors.New("vessel not found")
	// ErrNotAVessel is returned when a handle names a body that cannot fly.
	ErrNotAVessel = errors.New("body is not a vessel")
	// ErrUnknownBody is returned for handles that do not name a live body.
	ErrUnknownBody = errors.New("unknown body")
	// ErrInsufficientQuantity is returned when removing more cargo than is held.
	ErrInsufficientQuantity = errors.New("quantity unavailable")
	// ErrInvariant marks a broken structural invariant. Operations that hit it are refused.
	ErrInvariant = errors.New("internal consistency violation")
)

// invariantViolation reports a broken structural invariant. Debug builds
// (-tags debug) panic so the bug surfaces where it happened.
func invariantViolation(format string, args ...any) error {
	err := fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
	if strictInvariants {
		panic(err)
	}
	return err
}
