package seqtree

// node is one element of the sequence plus derived subtree state.
// idx is the number of elements in the left subtree, which is also
// the node's 0-based position within its own subtree; total subtree
// size is idx + 1 + size(right), so sizes are carried down the
// recursion instead of stored.
type node[T, I, P, L any] struct {
	refs  int32
	val   T
	info  I
	idx   int
	rev   bool
	left  *node[T, I, P, L]
	right *node[T, I, P, L]
}

func newNode[T, I, P, L any](mgr Manager[T, I, P, L], val T) *node[T, I, P, L] {
	return &node[T, I, P, L]{
		refs: 1,
		val:  val,
		info: mgr.MakeInfo(nil, 0, val, nil, 0),
	}
}

func retain[T, I, P, L any](n *node[T, I, P, L]) *node[T, I, P, L] {
	if n != nil {
		n.refs++
	}
	return n
}

func release[T, I, P, L any](n *node[T, I, P, L]) {
	if n == nil {
		return
	}
	n.refs--
	if n.refs == 0 {
		release(n.left)
		release(n.right)
		n.left, n.right = nil, nil
	}
}

// mut returns a uniquely-owned node for the handle in *slot, to be
// called before any in-place write.  A handle with other holders is
// replaced by a shallow copy: scalar fields and child handles, not
// subtrees.  The other holders keep the pre-mutation node unchanged;
// that is the entire persistence mechanism.
func mut[T, I, P, L any](slot **node[T, I, P, L]) *node[T, I, P, L] {
	n := *slot
	if n.refs == 1 {
		return n
	}
	c := &node[T, I, P, L]{
		refs:  1,
		val:   n.val,
		info:  n.info,
		idx:   n.idx,
		rev:   n.rev,
		left:  retain(n.left),
		right: retain(n.right),
	}
	n.refs--
	*slot = c
	return c
}

// infoOf adapts an optional child to the nil-able info pointer the
// Manager callbacks take.  Read-only: no copy-on-write.
func infoOf[T, I, P, L any](n *node[T, I, P, L]) *I {
	if n == nil {
		return nil
	}
	return &n.info
}

// setup flushes the node: pending lazy state is pushed to the node's
// own value and its children, and a pending reversal is realized one
// level.  Idempotent.  Children about to receive pushed state are
// copied-on-write first, but the node itself is flushed in place even
// when shared: flushing doesn't change the logical sequence, so
// every holder sees an equivalent tree.  Must run before a node's
// children, value or idx are inspected.
func (n *node[T, I, P, L]) setup(mgr Manager[T, I, P, L], length int) {
	var li, ri *I
	if n.left != nil {
		li = &mut(&n.left).info
	}
	if n.right != nil {
		ri = &mut(&n.right).info
	}
	mgr.Propagate(&n.info, li, n.idx, &n.val, ri, length-1-n.idx)
	if n.rev {
		mgr.Rev(&n.info, length)
		n.left, n.right = n.right, n.left
		if n.left != nil {
			c := mut(&n.left)
			c.rev = !c.rev
		}
		if n.right != nil {
			c := mut(&n.right)
			c.rev = !c.rev
		}
		n.idx = length - n.idx - 1
		n.rev = false
	}
}

// update recomputes info from the children, assuming they are
// already flushed.  Runs bottom-up after every structural or value
// change.
func (n *node[T, I, P, L]) update(mgr Manager[T, I, P, L], length int) {
	n.info = mgr.MakeInfo(infoOf(n.left), n.idx, n.val, infoOf(n.right), length-1-n.idx)
}
