package rotation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rotate/rotation"
)

// ExampleRotateLeft rotates a copy and leaves the input alone.
func ExampleRotateLeft() {
	in := []int32{1, 2, 3, 4, 5, 6, 7}

	two, _ := rotation.RotateLeft(in, 2)
	eight, _ := rotation.RotateLeft(in, 8) // 8 mod 7 = 1

	fmt.Println(in)
	fmt.Println(two)
	fmt.Println(eight)
	// Output:
	// [1 2 3 4 5 6 7]
	// [3 4 5 6 7 1 2]
	// [2 3 4 5 6 7 1]
}

// ExampleRotateInPlace overwrites the slice using each strategy.
func ExampleRotateInPlace() {
	for _, s := range []rotation.Strategy{rotation.Shift, rotation.Reverse, rotation.Juggle} {
		seq := []int32{1, 2, 3, 4, 5, 6, 7}
		if err := rotation.RotateInPlace(seq, 2, rotation.WithStrategy(s)); err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%-7s %v\n", s, seq)
	}
	// Output:
	// shift   [3 4 5 6 7 1 2]
	// reverse [3 4 5 6 7 1 2]
	// juggle  [3 4 5 6 7 1 2]
}

// ExampleRotateLeft_negative shows the error for a negative offset.
func ExampleRotateLeft_negative() {
	_, err := rotation.RotateLeft([]int32{1, 2, 3}, -1)
	fmt.Println(errors.Is(err, rotation.ErrInvalidArgument))
	fmt.Println(err)
	// Output:
	// true
	// rotation: invalid argument: expect a non-negative integer for rotateBy, received -1
}
