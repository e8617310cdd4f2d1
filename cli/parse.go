// Package cli turns command-line tokens into rotation requests and prints
// the results.
package cli

import (
	"errors"
	"strconv"
)

// InPlaceAmount is the offset the driver always demonstrates RotateInPlace with.
const InPlaceAmount = 2

// demoAmounts are the copying rotations shown when no arguments are given.
var demoAmounts = []int{2, 8}

// Invocation is a parsed command line.
type Invocation struct {
	// Sequence is owned by the Invocation; the driver rotates it in place.
	Sequence []int32
	// Amounts are the offsets passed to RotateLeft, in print order.
	Amounts []int
	// InPlaceAmount is the offset passed to RotateInPlace.
	InPlaceAmount int
	// Demo is set when no arguments were given.
	Demo bool
}

// DefaultSequence returns a fresh copy of [1,2,3,4,5,6,7].
func DefaultSequence() []int32 {
	return []int32{1, 2, 3, 4, 5, 6, 7}
}

// ParseInt32 parses a base-10 token that must fit in an int32.
// The returned error wraps ErrParseFailure and the *strconv.NumError.
func ParseInt32(token string) (int32, error) {
	v, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, &ArgError{Value: token, Err: err}
	}

	return int32(v), nil
}

// ParseArgs interprets args as:
//
//	(none)              demo: default sequence, amounts 2 and 8
//	amount              default sequence rotated by amount
//	e1 e2 ... amount    sequence e1..en rotated by amount
//
// The amount is parsed first and must be a non-negative int32. On failure
// the error is an *ArgError naming the offending token.
func ParseArgs(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{
			Sequence:      DefaultSequence(),
			Amounts:       append([]int(nil), demoAmounts...),
			InPlaceAmount: InPlaceAmount,
			Demo:          true,
		}, nil
	}

	last := len(args) - 1
	amount, err := parseToken(args[last], last+1)
	if err != nil {
		return Invocation{}, markLast(err)
	}
	if amount < 0 {
		return Invocation{}, &ArgError{Position: last + 1, Value: args[last], Last: true, Err: errNegativeAmount}
	}

	inv := Invocation{
		Sequence:      DefaultSequence(),
		Amounts:       []int{int(amount)},
		InPlaceAmount: InPlaceAmount,
	}
	if last == 0 {
		return inv, nil
	}

	inv.Sequence = make([]int32, last)
	for i, tok := range args[:last] {
		v, err := parseToken(tok, i+1)
		if err != nil {
			return Invocation{}, err
		}
		inv.Sequence[i] = v
	}

	return inv, nil
}

// parseToken runs ParseInt32 and records the 1-based position on failure.
func parseToken(token string, position int) (int32, error) {
	v, err := ParseInt32(token)
	if err != nil {
		var ae *ArgError
		if errors.As(err, &ae) {
			ae.Position = position
		}

		return 0, err
	}

	return v, nil
}

// markLast flags err as belonging to the rotation amount.
func markLast(err error) error {
	var ae *ArgError
	if errors.As(err, &ae) {
		ae.Last = true
	}

	return err
}
