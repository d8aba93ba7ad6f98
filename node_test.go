package seqtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type addSumNode = node[int64, AddSumInfo, int64, int64]

func newAddSumNode(v int64) *addSumNode {
	return newNode[int64, AddSumInfo, int64, int64](AddSum{}, v)
}

func TestMutUniquelyOwned(t *testing.T) {
	t.Parallel()
	n := newAddSumNode(7)
	slot := n
	got := mut(&slot)
	require.Same(t, n, got, "uniquely-owned node should mutate in place")
}

func TestMutShared(t *testing.T) {
	t.Parallel()
	child := newAddSumNode(1)
	n := newAddSumNode(7)
	n.left = child
	n.idx = 1

	other := retain(n)
	require.EqualValues(t, 2, n.refs)

	slot := n
	got := mut(&slot)
	require.NotSame(t, n, got, "shared node must be cloned before mutation")
	require.Same(t, got, slot)
	require.EqualValues(t, 1, got.refs)
	require.EqualValues(t, 1, n.refs, "original gives up the moved reference")
	require.Same(t, child, got.left, "clone is shallow; children stay shared")
	require.EqualValues(t, 2, child.refs)
	require.Equal(t, n.val, got.val)
	require.Same(t, n, other)
}

func TestReleaseCascades(t *testing.T) {
	t.Parallel()
	leaf := newAddSumNode(1)
	mid := newAddSumNode(2)
	mid.left = leaf
	mid.idx = 1
	root := newAddSumNode(3)
	root.right = mid

	extra := retain(leaf)
	release(root)
	require.EqualValues(t, 0, root.refs)
	require.EqualValues(t, 0, mid.refs)
	require.EqualValues(t, 1, extra.refs, "outside holder survives the cascade")
}

func TestCloneSharesUntilWritten(t *testing.T) {
	t.Parallel()
	tr := NewAddSum()
	for i := 0; i < 16; i++ {
		tr.Insert(i, int64(i))
	}
	c := tr.Clone()
	require.Same(t, tr.root, c.root)
	require.EqualValues(t, 2, tr.root.refs)

	c.Insert(0, 100)
	require.NotSame(t, tr.root, c.root, "write must peel the clone off the shared root")
	require.Equal(t, 16, tr.Len())
	require.EqualValues(t, 0, tr.At(0))
	require.EqualValues(t, 100, c.At(0))
}

func TestReverseIsDeferred(t *testing.T) {
	t.Parallel()
	tr := NewAddSum()
	for i := 0; i < 8; i++ {
		tr.Insert(i, int64(i))
	}
	tr.Reverse()
	require.True(t, tr.root.rev, "reverse only flags the root")
	require.EqualValues(t, 7, tr.At(0))
	require.False(t, tr.root.rev, "first visit realizes the flip")
}
