package seqtree

import (
	"fmt"
	"math"
)

// Tree is a randomized, partially-persistent balanced sequence of T,
// with aggregate and lazy-update semantics supplied by a Manager.
// The zero value is not usable; construct with New or NewSeeded.
//
// A Tree is single-threaded.  Merge and Split consume their operands:
// the handles move into the result trees, and the operands must not
// be used afterward.
type Tree[T, I, P, L any] struct {
	mgr  Manager[T, I, P, L]
	root *node[T, I, P, L]
	size int
	rng  rng
}

// New returns an empty sequence driven by the given manager.
func New[T, I, P, L any](mgr Manager[T, I, P, L]) *Tree[T, I, P, L] {
	return NewSeeded(mgr, defaultSeed)
}

// NewSeeded is New with a caller-chosen balance seed, for reproducing
// a particular run's tree shapes.  The logical sequence contents
// never depend on the seed.
func NewSeeded[T, I, P, L any](mgr Manager[T, I, P, L], seed uint64) *Tree[T, I, P, L] {
	return &Tree[T, I, P, L]{mgr: mgr, rng: newRng(seed)}
}

// Len returns the number of elements.
func (t *Tree[T, I, P, L]) Len() int {
	return t.size
}

// Clone returns a tree with the same contents that evolves
// independently of t.  O(1): the root handle is shared, and later
// writes to either tree copy only the nodes they touch.
func (t *Tree[T, I, P, L]) Clone() *Tree[T, I, P, L] {
	return &Tree[T, I, P, L]{mgr: t.mgr, root: retain(t.root), size: t.size, rng: t.rng}
}

// Merge returns the concatenation of t and rhs.  Both operands are
// consumed.
func (t *Tree[T, I, P, L]) Merge(rhs *Tree[T, I, P, L]) *Tree[T, I, P, L] {
	if t.size > math.MaxInt-rhs.size {
		panic(fmt.Sprintf("seqtree: merged length %d+%d overflows", t.size, rhs.size))
	}
	out := &Tree[T, I, P, L]{mgr: t.mgr, size: t.size + rhs.size, rng: t.rng}
	switch {
	case t.root == nil:
		out.root = rhs.root
	case rhs.root == nil:
		out.root = t.root
	default:
		out.root = merge(t.mgr, t.root, t.size, rhs.root, rhs.size, &out.rng)
	}
	t.root, rhs.root = nil, nil
	return out
}

// Split cuts t into [0,index) and [index,len), consuming t.  The
// second tree's balance stream is forked from the first's so the two
// don't repeat each other's draws.
func (t *Tree[T, I, P, L]) Split(index int) (*Tree[T, I, P, L], *Tree[T, I, P, L]) {
	if index < 0 || index > t.size {
		panic(fmt.Sprintf("seqtree: split index %d out of range for length %d", index, t.size))
	}
	l, r := split(t.mgr, t.root, t.size, index)
	t.root = nil
	left := &Tree[T, I, P, L]{mgr: t.mgr, root: l, size: index, rng: t.rng}
	right := &Tree[T, I, P, L]{mgr: t.mgr, root: r, size: t.size - index, rng: t.rng.fork()}
	return left, right
}

// Insert places val at position index, shifting later elements right.
func (t *Tree[T, I, P, L]) Insert(index int, val T) {
	if index < 0 || index > t.size {
		panic(fmt.Sprintf("seqtree: insert index %d out of range for length %d", index, t.size))
	}
	if t.size == math.MaxInt {
		panic("seqtree: length overflows")
	}
	insert(t.mgr, &t.root, t.size, index, val, &t.rng)
	t.size++
}

// Remove deletes and returns the element at index.
func (t *Tree[T, I, P, L]) Remove(index int) T {
	if index < 0 || index >= t.size {
		panic(fmt.Sprintf("seqtree: remove index %d out of range for length %d", index, t.size))
	}
	v, rest := remove(t.mgr, t.root, t.size, index, &t.rng)
	t.root = rest
	t.size--
	return v
}

// At returns the element at index.
func (t *Tree[T, I, P, L]) At(index int) T {
	if index < 0 || index >= t.size {
		panic(fmt.Sprintf("seqtree: index %d out of range for length %d", index, t.size))
	}
	return t.root.at(t.mgr, t.size, index)
}

// Reverse reverses the sequence in O(1) by flagging the root; the
// flip trickles down lazily as later operations visit nodes.
func (t *Tree[T, I, P, L]) Reverse() {
	if t.root == nil {
		return
	}
	n := mut(&t.root)
	n.rev = !n.rev
}

// Prod returns the product of the elements in [lo,hi), combined in
// sequence order.
func (t *Tree[T, I, P, L]) Prod(lo, hi int) P {
	t.checkRange(lo, hi)
	if lo == hi {
		return t.mgr.Identity()
	}
	return t.root.prodRange(t.mgr, t.size, lo, hi)
}

// Apply applies the lazy operator to every element in [lo,hi),
// exactly once each.
func (t *Tree[T, I, P, L]) Apply(lo, hi int, lazy L) {
	t.checkRange(lo, hi)
	if lo == hi {
		return
	}
	applyRange(t.mgr, &t.root, t.size, lo, hi, lazy)
}

func (t *Tree[T, I, P, L]) checkRange(lo, hi int) {
	if lo < 0 || hi > t.size || lo > hi {
		panic(fmt.Sprintf("seqtree: range [%d,%d) invalid for length %d", lo, hi, t.size))
	}
}

// Iter returns a lazy, one-shot in-order iterator.  The tree must not
// be mutated while the iterator is in use; re-derive a fresh iterator
// instead of rewinding.
func (t *Tree[T, I, P, L]) Iter() *Iterator[T, I, P, L] {
	it := &Iterator[T, I, P, L]{mgr: t.mgr, remaining: t.size}
	it.push(t.root, t.size)
	return it
}

// ToSlice returns the sequence as a slice.
func (t *Tree[T, I, P, L]) ToSlice() []T {
	out := make([]T, 0, t.size)
	it := t.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

func (t *Tree[T, I, P, L]) String() string {
	return fmt.Sprint(t.ToSlice())
}

// Iterator walks a Tree in order, flushing pending lazy state as it
// descends.  It borrows the tree's nodes rather than retaining them.
type Iterator[T, I, P, L any] struct {
	mgr       Manager[T, I, P, L]
	stack     []iterFrame[T, I, P, L]
	remaining int
}

type iterFrame[T, I, P, L any] struct {
	n      *node[T, I, P, L]
	length int
}

func (it *Iterator[T, I, P, L]) push(n *node[T, I, P, L], length int) {
	for n != nil {
		n.setup(it.mgr, length)
		it.stack = append(it.stack, iterFrame[T, I, P, L]{n, length})
		length = n.idx
		n = n.left
	}
}

// Next returns the next element, or false when the sequence is
// exhausted.
func (it *Iterator[T, I, P, L]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var zero T
		return zero, false
	}
	f := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.push(f.n.right, f.length-1-f.n.idx)
	it.remaining--
	return f.n.val, true
}

// Len returns the number of elements not yet produced.
func (it *Iterator[T, I, P, L]) Len() int {
	return it.remaining
}
