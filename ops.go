package seqtree

// The structural operators consume the handles they are given: the
// caller's reference moves into the call and comes back out through
// the returned handle(s).  Reference counts only change when a
// shared node is copied on write or an owned node is dropped.

// merge joins two non-empty subtrees, preserving sequence order.
// The surviving root is drawn from the left operand with probability
// llen/(llen+rlen); weighting the draw by subtree size is what keeps
// the expected height logarithmic.
func merge[T, I, P, L any](mgr Manager[T, I, P, L], left *node[T, I, P, L], llen int, right *node[T, I, P, L], rlen int, r *rng) *node[T, I, P, L] {
	length := llen + rlen
	if r.choose(llen, rlen) {
		left.setup(mgr, llen)
		n := mut(&left)
		if n.right != nil {
			n.right = merge(mgr, n.right, llen-1-n.idx, right, rlen, r)
		} else {
			n.right = right
		}
		n.update(mgr, length)
		return n
	}
	right.setup(mgr, rlen)
	n := mut(&right)
	nidx := n.idx + llen
	if n.left != nil {
		n.left = merge(mgr, left, llen, n.left, n.idx, r)
	} else {
		n.left = left
	}
	n.idx = nidx
	n.update(mgr, length)
	return n
}

// split cuts a subtree into [0,index) and [index,length).  The
// boundary cuts hand back the input without touching a node; an
// interior cut descends into the side containing it, reattaching the
// unaffected subtree as-is.
func split[T, I, P, L any](mgr Manager[T, I, P, L], this *node[T, I, P, L], length, index int) (*node[T, I, P, L], *node[T, I, P, L]) {
	if this == nil {
		return nil, nil
	}
	if index == 0 {
		return nil, this
	}
	if index == length {
		return this, nil
	}
	this.setup(mgr, length)
	n := mut(&this)
	idx := n.idx
	if index > idx {
		l, r := split(mgr, n.right, length-1-idx, index-1-idx)
		n.right = l
		n.update(mgr, index)
		return n, r
	}
	l, r := split(mgr, n.left, idx, index)
	n.left = r
	n.idx = idx - index
	n.update(mgr, length-index)
	return l, n
}

// insert places val at position index.  With probability 1/(length+1)
// the new element becomes the subtree root, built over a split at the
// cut point; otherwise the insertion recurses into the child holding
// the position.  Each of the length+1 possible root identities is
// equally likely, the random-insertion-point treap construction.
func insert[T, I, P, L any](mgr Manager[T, I, P, L], slot **node[T, I, P, L], length, index int, val T, r *rng) {
	if *slot == nil {
		*slot = newNode(mgr, val)
		return
	}
	if r.choose(length, 1) {
		(*slot).setup(mgr, length)
		n := mut(slot)
		idx := n.idx
		if index > idx {
			insert(mgr, &n.right, length-1-idx, index-1-idx, val, r)
		} else {
			insert(mgr, &n.left, idx, index, val, r)
			n.idx++
		}
		n.update(mgr, length+1)
		return
	}
	l, rt := split(mgr, *slot, length, index)
	*slot = &node[T, I, P, L]{
		refs:  1,
		val:   val,
		info:  mgr.MakeInfo(infoOf(l), index, val, infoOf(rt), length-index),
		idx:   index,
		left:  l,
		right: rt,
	}
}

// remove extracts the element at index, returning it and whatever
// remains of the subtree.  A node with at most one child is replaced
// by that child; with two, they are re-joined by merge.
func remove[T, I, P, L any](mgr Manager[T, I, P, L], this *node[T, I, P, L], length, index int, r *rng) (T, *node[T, I, P, L]) {
	this.setup(mgr, length)
	n := mut(&this)
	idx := n.idx
	switch {
	case index < idx:
		v, rest := remove(mgr, n.left, idx, index, r)
		n.left = rest
		n.idx--
		n.update(mgr, length-1)
		return v, n
	case index == idx:
		l, rt := n.left, n.right
		n.left, n.right = nil, nil
		v := n.val
		release(n)
		switch {
		case l == nil:
			return v, rt
		case rt == nil:
			return v, l
		default:
			return v, merge(mgr, l, idx, rt, length-1-idx, r)
		}
	default:
		v, rest := remove(mgr, n.right, length-1-idx, index-1-idx, r)
		n.right = rest
		n.update(mgr, length-1)
		return v, n
	}
}

// at reads the element at index without structural change.
func (n *node[T, I, P, L]) at(mgr Manager[T, I, P, L], length, index int) T {
	for {
		n.setup(mgr, length)
		switch {
		case index < n.idx:
			length = n.idx
			n = n.left
		case index == n.idx:
			return n.val
		default:
			index -= n.idx + 1
			length -= n.idx + 1
			n = n.right
		}
	}
}
