package segtree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrange/segtree"
)

// bitAnd folds uint64 masks with &.
var bitAnd = segtree.NewFunc(func(a, b uint64) uint64 { return a & b }, ^uint64(0))

// concatString is a non-commutative behavior used to check fold order.
var concatString = segtree.NewFunc(func(a, b string) string { return a + b }, "")

// seq returns [0, 1, …, n-1].
func seq(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	return xs
}

func TestNew_Errors(t *testing.T) {
	_, err := segtree.New[int](-1, segtree.Sum[int]{})
	assert.ErrorIs(t, err, segtree.ErrInvalidSize)

	_, err = segtree.New[int](4, nil)
	assert.ErrorIs(t, err, segtree.ErrNilBehavior)

	_, err = segtree.FromSlice([]int{1}, nil)
	assert.ErrorIs(t, err, segtree.ErrNilBehavior)

	_, err = segtree.NewFilled(-3, 0, segtree.Sum[int]{})
	assert.ErrorIs(t, err, segtree.ErrInvalidSize)
}

func TestEmptyTree(t *testing.T) {
	st, err := segtree.New[int](0, segtree.Sum[int]{})
	require.NoError(t, err)
	assert.Equal(t, 0, st.Size())
	assert.Equal(t, 0, st.Query(0, 0))
	assert.Empty(t, st.Values())
}

func TestSumConcrete(t *testing.T) {
	st, err := segtree.FromSlice(seq(32), segtree.Sum[int]{})
	require.NoError(t, err)

	assert.Equal(t, 496, st.Query(0, 32))
	st.Update(5, 100)
	assert.Equal(t, 591, st.Query(0, 32))
	assert.Equal(t, 100, st.At(5))
	assert.Equal(t, 100, st.Query(5, 6))
	assert.Equal(t, 0+1+2+3+4, st.Query(0, 5), "ranges excluding the update are unaffected")
}

func TestQuery_EmptyRangeIsIdentity(t *testing.T) {
	st, err := segtree.FromSlice([]string{"a", "b", "c"}, concatString)
	require.NoError(t, err)
	for l := 0; l <= 3; l++ {
		assert.Equal(t, "", st.Query(l, l))
	}
	assert.Equal(t, "", st.Query(2, 1), "inverted range folds to identity")
}

func TestQueryAndUpdate_BitAnd(t *testing.T) {
	const n = 64
	st, err := segtree.New[uint64](n, bitAnd)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		st.Update(i, ^(uint64(1) << i))
	}
	for l := 0; l < n; l++ {
		for r := l + 1; r <= n; r++ {
			expect := ^uint64(0)
			for k := l; k < r; k++ {
				expect &= ^(uint64(1) << k)
			}
			require.Equal(t, expect, st.Query(l, r), "Query(%d,%d)", l, r)
		}
	}
}

func TestNewFilled(t *testing.T) {
	st, err := segtree.NewFilled(7, 3, segtree.Sum[int]{})
	require.NoError(t, err)
	assert.Equal(t, 21, st.Query(0, 7))
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3, 3}, st.Values())
}

func TestValuesAndAll(t *testing.T) {
	xs := []int{5, 1, 4}
	st, err := segtree.FromSlice(xs, segtree.Max[int]{NegInf: math.MinInt})
	require.NoError(t, err)

	vs := st.Values()
	assert.Equal(t, xs, vs)
	vs[0] = 99
	assert.Equal(t, 5, st.At(0), "Values must return a copy")

	var seen []int
	for i, v := range st.All() {
		assert.Equal(t, xs[i], v)
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, 5, st.Query(0, 3))
}

// TestRandomNonCommutative cross-checks Query against a linear fold for a
// non-commutative merge on sizes that are and are not powers of two.
func TestRandomNonCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	letters := "abcdefghijklmnopqrstuvwxyz"
	for _, n := range []int{1, 2, 3, 24, 31, 32, 37, 53} {
		naive := make([]string, n)
		for i := range naive {
			naive[i] = string(letters[rng.Intn(len(letters))])
		}
		st, err := segtree.FromSlice(naive, concatString)
		require.NoError(t, err)

		for iter := 0; iter < n*n; iter++ {
			if rng.Intn(2) == 0 {
				i := rng.Intn(n)
				x := string(letters[rng.Intn(len(letters))])
				naive[i] = x
				st.Update(i, x)
				continue
			}
			l, r := rng.Intn(n+1), rng.Intn(n+1)
			if l > r {
				l, r = r, l
			}
			expect := ""
			for k := l; k < r; k++ {
				expect += naive[k]
			}
			require.Equal(t, expect, st.Query(l, r), "n=%d Query(%d,%d)", n, l, r)
		}
	}
}

func TestMinProductBehaviors(t *testing.T) {
	mn, err := segtree.FromSlice([]float64{3, -1, 7, 2}, segtree.Min[float64]{Inf: math.Inf(1)})
	require.NoError(t, err)
	assert.Equal(t, -1.0, mn.Query(0, 4))
	assert.Equal(t, 2.0, mn.Query(2, 4))
	assert.True(t, math.IsInf(mn.Query(1, 1), 1))

	pr, err := segtree.FromSlice([]int64{2, 3, 4}, segtree.Product[int64]{})
	require.NoError(t, err)
	assert.Equal(t, int64(24), pr.Query(0, 3))
	assert.Equal(t, int64(1), pr.Query(3, 3))
}

func TestReverseHelpers(t *testing.T) {
	cat := segtree.Concat[int]{}
	assert.True(t, segtree.HasReverse[[]int](cat))
	assert.False(t, segtree.IsCommutative[[]int](cat))
	assert.Equal(t, []int{3, 2, 1}, segtree.Reverse[[]int](cat, 3, []int{1, 2, 3}))

	sum := segtree.Sum[int]{}
	assert.False(t, segtree.HasReverse[int](sum))
	assert.True(t, segtree.IsCommutative[int](sum))
	assert.Equal(t, 9, segtree.Reverse[int](sum, 4, 9), "missing Reverse is a no-op")

	assert.True(t, segtree.IsCommutative[uint64](bitAnd), "undeclared behaviors count as commutative")
}

func TestConcat_NoAliasing(t *testing.T) {
	st, err := segtree.FromSlice([][]int{{1}, {2}, {3}, {4}}, segtree.Concat[int]{})
	require.NoError(t, err)
	got := st.Query(0, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	got[0] = 42
	assert.Equal(t, []int{1, 2, 3, 4}, st.Query(0, 4))
	assert.Nil(t, st.Query(2, 2))
}
