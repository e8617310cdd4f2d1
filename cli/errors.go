package cli

import (
	"errors"
	"fmt"
)

// ErrParseFailure marks a command-line token that is not a usable integer.
var ErrParseFailure = errors.New("cli: parse failure")

// errNegativeAmount is the reason attached when the rotation amount is < 0.
var errNegativeAmount = errors.New("cli: rotation amount is negative")

// Exit statuses returned by Run and Execute.
const (
	ExitOK      = 0
	ExitUsage   = 1 // bad argument or configuration
	ExitFailure = 2 // rotation or output failed
)

// ArgError describes the token that failed to parse.
// errors.Is(err, ErrParseFailure) holds for every ArgError.
type ArgError struct {
	// Position is the 1-based index of the token among the arguments.
	Position int
	// Value is the raw token.
	Value string
	// Last is set when the token is the rotation amount.
	Last bool
	// Err is the underlying reason (a *strconv.NumError or errNegativeAmount).
	Err error
}

// Error reports which argument failed and what it held.
func (e *ArgError) Error() string {
	switch {
	case e.Last && errors.Is(e.Err, errNegativeAmount):
		return fmt.Sprintf("Invalid input in the last argument. Expect non-negative integer, Received: %s", e.Value)
	case e.Last:
		return fmt.Sprintf("Invalid input in the last argument. Expect integer, Received: %s", e.Value)
	default:
		return fmt.Sprintf("Invalid input. Expect integer for argument %d, Received: %s", e.Position, e.Value)
	}
}

// Unwrap exposes both ErrParseFailure and the underlying reason.
func (e *ArgError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}
