// Package rotation rotates sequences of int32 values to the left by a
// non-negative offset.
//
// 🚀 What is a left rotation?
//
//	Rotating [1,2,3,4,5,6,7] left by 2 moves the first two elements to the
//	back: [3,4,5,6,7,1,2]. The element at index i lands at (i-R) mod L, so
//	the element formerly at index R mod L becomes the new head.
//
// ✨ Two strategies:
//   - RotateLeft    — copying: allocates a fresh slice, input untouched.
//   - RotateInPlace — mutating: one scratch slot, input overwritten.
//
// In-place algorithms (select with WithStrategy):
//   - Shift   — repeat eff times: pop the head, shift left by one, append it.
//     O(L·eff) time. This is the default.
//   - Reverse — three reversals. O(L) time.
//   - Juggle  — cyclic replacement over gcd(L, eff) cycles. O(L) time.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rotate/rotation"
//
//	out, err := rotation.RotateLeft([]int32{1, 2, 3, 4, 5, 6, 7}, 8)
//	// out == [2 3 4 5 6 7 1]
//
//	seq := []int32{1, 2, 3, 4, 5, 6, 7}
//	err = rotation.RotateInPlace(seq, 2, rotation.WithStrategy(rotation.Reverse))
//	// seq == [3 4 5 6 7 1 2]
//
// Offsets are reduced modulo len(seq) before use; a negative offset fails with
// ErrInvalidArgument before any element is read or written. Rotating an empty
// sequence is a no-op.
//
// Concurrency: the functions hold no state. RotateInPlace mutates its
// argument, so callers sharing one slice across goroutines must synchronise
// access themselves.
package rotation
