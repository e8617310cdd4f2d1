// SPDX-License-Identifier: MIT
// Package: rotate/rotation
//
// errors.go — sentinel errors for the rotation package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (the offending value) is attached with %w at the return site.
//   • Rotators never panic on bad input and never partially mutate.

package rotation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a negative rotation offset.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* reject request */ }.
var ErrInvalidArgument = errors.New("rotation: invalid argument")

// ErrOptionViolation indicates an invalid Option (e.g. an unknown Strategy)
// or an unparseable strategy name.
var ErrOptionViolation = errors.New("rotation: invalid option supplied")

// negativeOffset builds the error returned for rotateBy < 0.
func negativeOffset(rotateBy int) error {
	return fmt.Errorf("%w: expect a non-negative integer for rotateBy, received %d", ErrInvalidArgument, rotateBy)
}
