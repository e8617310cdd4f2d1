// Package rotation defines in-place strategies and functional options.
package rotation

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm RotateInPlace uses.
//
//   - Shift   — single-step shifts, eff passes over the slice.
//     Time O(L·eff), one scratch value.
//   - Reverse — reverse both halves, then the whole slice.
//     Time O(L), one scratch value per swap.
//   - Juggle  — move each element straight to its final slot,
//     following gcd(L, eff) cycles. Time O(L), one scratch value.
type Strategy int

const (
	// Shift is the default, memory-frugal but quadratic-ish strategy.
	Shift Strategy = iota

	// Reverse is the three-reversal strategy.
	Reverse

	// Juggle is the cyclic replacement strategy.
	Juggle
)

var strategyNames = map[Strategy]string{
	Shift:   "shift",
	Reverse: "reverse",
	Juggle:  "juggle",
}

// String returns the lower-case name accepted by ParseStrategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// valid reports whether s names a known strategy.
func (s Strategy) valid() bool {
	_, ok := strategyNames[s]

	return ok
}

// ParseStrategy maps "shift", "reverse" or "juggle" (case-insensitive,
// surrounding spaces ignored) to a Strategy.
// Unknown names return an error wrapping ErrOptionViolation.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}

	return Shift, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Option configures RotateInPlace via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// RotateInPlace is invoked.
type Option func(*Options)

// Options holds the parameters RotateInPlace runs with.
type Options struct {
	// Strategy is the in-place algorithm. Defaults to Shift.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the Shift strategy.
func DefaultOptions() Options {
	return Options{Strategy: Shift}
}

// WithStrategy selects the in-place algorithm.
// Unknown values are reported as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// resolve applies opts over DefaultOptions and returns the first recorded error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
