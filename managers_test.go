package seqtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func fromString(s string) *Tree[rune, ConcatInfo, string, rune] {
	tr := NewAssignConcat()
	for i, r := range []rune(s) {
		tr.Insert(i, r)
	}
	return tr
}

func TestConcatOrder(t *testing.T) {
	t.Parallel()
	tr := fromString("abcdefgh")
	require.Equal(t, "abcdefgh", tr.Prod(0, 8))
	require.Equal(t, "cdef", tr.Prod(2, 6))
	require.Equal(t, "a", tr.Prod(0, 1))
	require.Equal(t, "", tr.Prod(5, 5))
}

func TestConcatReverse(t *testing.T) {
	t.Parallel()
	tr := fromString("abcdefgh")
	tr.Reverse()
	require.Equal(t, "hgfedcba", tr.Prod(0, 8))
	require.Equal(t, "gfe", tr.Prod(1, 4))
	require.Equal(t, 'h', tr.At(0))
}

func TestConcatAssign(t *testing.T) {
	t.Parallel()
	tr := fromString("abcdefgh")
	tr.Apply(2, 5, 'x')
	require.Equal(t, "abxxxfgh", tr.Prod(0, 8))
	tr.Reverse()
	require.Equal(t, "hgfxxxba", tr.Prod(0, 8))
	tr.Apply(0, 2, 'y')
	require.Equal(t, "yyfxxxba", tr.Prod(0, 8))
	require.Equal(t, "fxx", tr.Prod(2, 5))
}

func TestConcatSplitMerge(t *testing.T) {
	t.Parallel()
	tr := fromString("abcdefgh")
	left, right := tr.Split(3)
	require.Equal(t, "abc", left.Prod(0, 3))
	require.Equal(t, "defgh", right.Prod(0, 5))
	require.Equal(t, "defghabc", right.Merge(left).Prod(0, 8))
}

// Random interleavings against a naive rune-slice model.  A
// non-commutative product makes any combine-order mistake in the
// range operators visible immediately.
func TestConcatRandomOps(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(71))
	tr := NewAssignConcat()
	var model []rune
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	for step := 0; step < 400; step++ {
		switch op := r.Intn(5); {
		case op == 0 || len(model) == 0:
			at := r.Intn(len(model) + 1)
			c := letters[r.Intn(len(letters))]
			tr.Insert(at, c)
			model = append(model[:at:at], append([]rune{c}, model[at:]...)...)
		case op == 1:
			at := r.Intn(len(model))
			require.Equal(t, model[at], tr.Remove(at))
			model = append(model[:at:at], model[at+1:]...)
		case op == 2:
			lo := r.Intn(len(model) + 1)
			hi := lo + r.Intn(len(model)+1-lo)
			c := letters[r.Intn(len(letters))]
			tr.Apply(lo, hi, c)
			for i := lo; i < hi; i++ {
				model[i] = c
			}
		case op == 3:
			tr.Reverse()
			for i, j := 0, len(model)-1; i < j; i, j = i+1, j-1 {
				model[i], model[j] = model[j], model[i]
			}
		default:
			lo := r.Intn(len(model) + 1)
			hi := lo + r.Intn(len(model)+1-lo)
			require.Equal(t, string(model[lo:hi]), tr.Prod(lo, hi))
		}
	}
	require.Equal(t, string(model), tr.Prod(0, tr.Len()))
}

func TestAddSumNegativeAndZero(t *testing.T) {
	t.Parallel()
	tr := NewAddSum()
	for i, v := range []int64{-5, 0, 5, -10, 10} {
		tr.Insert(i, v)
	}
	require.EqualValues(t, 0, tr.Prod(0, 5))
	tr.Apply(1, 4, -1)
	require.EqualValues(t, -3, tr.Prod(0, 5))
	require.EqualValues(t, -1, tr.At(1))
}
