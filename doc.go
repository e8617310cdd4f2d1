// Package rotate is a small library and command-line tool for rotating
// sequences of int32 values to the left.
//
// 🚀 What is in the box?
//
//	• rotation/ — the two rotators:
//	    RotateLeft    copies into a fresh slice, O(L) time, O(L) memory
//	    RotateInPlace overwrites the input, O(1) memory, with a choice of
//	                  Shift (O(L·eff)), Reverse or Juggle (both O(L))
//	• format/   — renders a sequence as "1,2,3" lines
//	• cli/      — argument parsing, the driver and the cobra root command
//	• cmd/rotate — the binary
//
// ✨ Guarantees:
//
//   - Offsets are reduced modulo the length; negative offsets fail with
//     rotation.ErrInvalidArgument before any element is touched.
//   - All strategies produce the same permutation: the element at index i
//     ends at (i - R) mod L.
//   - Empty sequences rotate as a no-op.
//
// Quick example:
//
//	[1,2,3,4,5,6,7] ──rotate left 2──▶ [3,4,5,6,7,1,2]
//
//	go install github.com/katalvlaran/rotate/cmd/rotate@latest
//	rotate 10 20 30 1
package rotate
