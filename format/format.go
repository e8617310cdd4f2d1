// Package format renders int32 sequences as single comma-separated lines.
package format

import (
	"io"
	"strconv"
	"strings"
)

// OriginalLabel prefixes the line showing a sequence before rotation.
const OriginalLabel = "Original:   "

// Join writes the elements of seq separated by sep, with no trailing
// separator. An empty seq yields "".
//
// Complexity: O(L).
func Join(seq []int32, sep string) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}

	return b.String()
}

// Line renders seq comma-separated and terminated by a newline.
func Line(seq []int32) string {
	return Join(seq, ",") + "\n"
}

// RotatedLabel prefixes a rotated result. n is the amount as requested, not
// reduced modulo the length.
func RotatedLabel(n int) string {
	return "Rotated(" + strconv.Itoa(n) + "): "
}

// Fprint writes label followed by Line(seq) to w.
func Fprint(w io.Writer, label string, seq []int32) error {
	_, err := io.WriteString(w, label+Line(seq))

	return err
}
