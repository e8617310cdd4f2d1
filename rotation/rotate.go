package rotation

// Effective reduces rotateBy modulo n, the length of the sequence.
//
// Returns ErrInvalidArgument (wrapped) when rotateBy < 0. For n == 0 the
// effective offset is 0, so empty sequences rotate as a no-op.
//
// Complexity: O(1).
func Effective(n, rotateBy int) (int, error) {
	if rotateBy < 0 {
		return 0, negativeOffset(rotateBy)
	}
	if n == 0 {
		return 0, nil
	}

	return rotateBy % n, nil
}

// RotateLeft — copying left rotation
//
// Description:
//
//	Returns a new slice holding seq rotated left by rotateBy positions.
//	seq is never mutated and never aliased by the result.
//
// Algorithm:
//  1. eff = rotateBy mod L.
//  2. Copy seq[eff:L] to the front of a fresh slice of length L.
//  3. Append seq[0:eff] after it.
//
// Errors:
//   - ErrInvalidArgument — rotateBy < 0; the returned slice is nil.
//
// Complexity:
//
//	Time   = O(L)
//	Memory = O(L)
func RotateLeft(seq []int32, rotateBy int) ([]int32, error) {
	eff, err := Effective(len(seq), rotateBy)
	if err != nil {
		return nil, err
	}

	out := make([]int32, len(seq))
	n := copy(out, seq[eff:])
	copy(out[n:], seq[:eff])

	return out, nil
}

// RotateInPlace — mutating left rotation
//
// Description:
//
//	Rotates seq left by rotateBy positions, overwriting it. After return seq
//	holds exactly what RotateLeft would have produced; its length is
//	unchanged and nothing is allocated beyond scalar temporaries.
//
// Strategies (WithStrategy):
//   - Shift   (default) — O(L·eff) time. Prefer RotateLeft or another
//     strategy when eff is large.
//   - Reverse — O(L) time.
//   - Juggle  — O(L) time.
//
// Errors (checked before seq is touched):
//   - ErrInvalidArgument — rotateBy < 0.
//   - ErrOptionViolation — an Option carried an invalid value.
func RotateInPlace(seq []int32, rotateBy int, opts ...Option) error {
	eff, err := Effective(len(seq), rotateBy)
	if err != nil {
		return err
	}
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	if eff == 0 {
		return nil
	}

	switch o.Strategy {
	case Reverse:
		reverseRotate(seq, eff)
	case Juggle:
		juggleRotate(seq, eff)
	default:
		shiftRotate(seq, eff)
	}

	return nil
}

// shiftRotate performs eff single-step left shifts.
func shiftRotate(seq []int32, eff int) {
	last := len(seq) - 1
	for step := 0; step < eff; step++ {
		tmp := seq[0] // wraps to the back
		for i := 0; i < last; i++ {
			seq[i] = seq[i+1]
		}
		seq[last] = tmp
	}
}

// reverseRotate rotates by reversing seq[:eff], seq[eff:], then all of seq.
func reverseRotate(seq []int32, eff int) {
	reverse(seq[:eff])
	reverse(seq[eff:])
	reverse(seq)
}

// reverse reverses s in place.
func reverse(s []int32) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// juggleRotate walks the gcd(L, eff) permutation cycles. Each cycle starts
// at index start, pulls the value from start+eff into the current slot and
// closes when it returns to start.
func juggleRotate(seq []int32, eff int) {
	n := len(seq)
	cycles := gcd(n, eff)
	for start := 0; start < cycles; start++ {
		tmp := seq[start]
		cur := start
		for {
			next := cur + eff
			if next >= n {
				next -= n
			}
			if next == start {
				break
			}
			seq[cur] = seq[next]
			cur = next
		}
		seq[cur] = tmp
	}
}

// gcd returns the greatest common divisor of two non-negative ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
