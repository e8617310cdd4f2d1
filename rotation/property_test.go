package rotation_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/rotate/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyRuns = 200

// randomSeq builds a sequence of length 1..32 with values across the int32 range.
func randomSeq(rng *rand.Rand) []int32 {
	seq := make([]int32, 1+rng.Intn(32))
	for i := range seq {
		seq[i] = int32(rng.Uint32())
	}

	return seq
}

// TestProperty_StrategiesAgree checks that every in-place strategy produces
// the RotateLeft permutation, and that element i lands at (i-R) mod L.
func TestProperty_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < propertyRuns; run++ {
		seq := randomSeq(rng)
		r := rng.Intn(100)

		want, err := rotation.RotateLeft(seq, r)
		require.NoError(t, err)
		n := len(seq)
		for i, v := range seq {
			assert.Equal(t, v, want[((i-r)%n+n)%n])
		}

		for _, s := range strategies {
			got := slices.Clone(seq)
			require.NoError(t, rotation.RotateInPlace(got, r, rotation.WithStrategy(s)))
			assert.Equal(t, want, got, "strategy %s, len %d, r %d", s, n, r)
		}
	}
}

// TestProperty_ModuloAndIdentity checks R ≡ R mod L, R=0 and R=L.
func TestProperty_ModuloAndIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for run := 0; run < propertyRuns; run++ {
		seq := randomSeq(rng)
		n := len(seq)
		r := rng.Intn(1000)

		full, err := rotation.RotateLeft(seq, r)
		require.NoError(t, err)
		reduced, err := rotation.RotateLeft(seq, r%n)
		require.NoError(t, err)
		assert.Equal(t, reduced, full)

		zero, err := rotation.RotateLeft(seq, 0)
		require.NoError(t, err)
		assert.Equal(t, seq, zero)

		whole, err := rotation.RotateLeft(seq, n)
		require.NoError(t, err)
		assert.Equal(t, seq, whole)
	}
}

// TestProperty_Composition checks rotate(rotate(S,A),B) == rotate(S,A+B).
func TestProperty_Composition(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for run := 0; run < propertyRuns; run++ {
		seq := randomSeq(rng)
		a, b := rng.Intn(50), rng.Intn(50)

		first, err := rotation.RotateLeft(seq, a)
		require.NoError(t, err)
		twice, err := rotation.RotateLeft(first, b)
		require.NoError(t, err)
		once, err := rotation.RotateLeft(seq, a+b)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

// TestProperty_Multiset checks that rotation only permutes positions.
func TestProperty_Multiset(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for run := 0; run < propertyRuns; run++ {
		seq := randomSeq(rng)
		out, err := rotation.RotateLeft(seq, rng.Intn(64))
		require.NoError(t, err)
		require.Len(t, out, len(seq))

		want := slices.Clone(seq)
		slices.Sort(want)
		got := slices.Clone(out)
		slices.Sort(got)
		assert.Equal(t, want, got)
	}
}

// TestProperty_NegativeNeverMutates checks every negative offset fails cleanly.
func TestProperty_NegativeNeverMutates(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for run := 0; run < propertyRuns; run++ {
		seq := randomSeq(rng)
		r := -1 - rng.Intn(100)

		_, err := rotation.RotateLeft(seq, r)
		assert.ErrorIs(t, err, rotation.ErrInvalidArgument)

		for _, s := range strategies {
			got := slices.Clone(seq)
			err = rotation.RotateInPlace(got, r, rotation.WithStrategy(s))
			assert.ErrorIs(t, err, rotation.ErrInvalidArgument)
			assert.Equal(t, seq, got)
		}
	}
}
