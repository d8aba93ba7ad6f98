package seqtree

// Boundary-aware descent for range queries and range updates.  A
// half-range ([0,index) or [index,length)) only ever straddles one
// subtree boundary, so each call descends a single root-to-cut path,
// folding fully-covered sibling subtrees in through their info
// without visiting their elements.  An interior range is split at the
// first node whose element separates the two bounds, into a suffix
// query of the left child and a prefix query of the right.

// prodLeft computes the product of the prefix [0,index).
func (n *node[T, I, P, L]) prodLeft(mgr Manager[T, I, P, L], length, index int) P {
	if index == 0 {
		return mgr.Identity()
	}
	n.setup(mgr, length)
	if index == length {
		return mgr.InfoProd(&n.info)
	}
	ret := mgr.Identity()
	for {
		switch {
		case index < n.idx:
			length = n.idx
			n = n.left
			n.setup(mgr, length)
		case index == n.idx:
			l := n.left
			l.setup(mgr, n.idx)
			return mgr.Op(ret, mgr.InfoProd(&l.info))
		default:
			if l := n.left; l != nil {
				l.setup(mgr, n.idx)
				ret = mgr.Op(ret, mgr.InfoProd(&l.info))
			}
			ret = mgr.Op(ret, mgr.ValProd(n.val))
			if index == n.idx+1 {
				return ret
			}
			index -= n.idx + 1
			length -= n.idx + 1
			n = n.right
			n.setup(mgr, length)
		}
	}
}

// prodRight computes the product of the suffix [index,length).
func (n *node[T, I, P, L]) prodRight(mgr Manager[T, I, P, L], length, index int) P {
	if index == length {
		return mgr.Identity()
	}
	n.setup(mgr, length)
	if index == 0 {
		return mgr.InfoProd(&n.info)
	}
	ret := mgr.Identity()
	for {
		switch {
		case index <= n.idx:
			if r := n.right; r != nil {
				r.setup(mgr, length-1-n.idx)
				ret = mgr.Op(mgr.InfoProd(&r.info), ret)
			}
			ret = mgr.Op(mgr.ValProd(n.val), ret)
			if index == n.idx {
				return ret
			}
			length = n.idx
			n = n.left
			n.setup(mgr, length)
		case index == n.idx+1:
			r := n.right
			r.setup(mgr, length-1-n.idx)
			return mgr.Op(mgr.InfoProd(&r.info), ret)
		default:
			index -= n.idx + 1
			length -= n.idx + 1
			n = n.right
			n.setup(mgr, length)
		}
	}
}

// applyLeft applies lazy to the prefix [0,index).
func applyLeft[T, I, P, L any](mgr Manager[T, I, P, L], slot **node[T, I, P, L], length, index int, lazy L) {
	if index == 0 {
		return
	}
	if index == length {
		n := mut(slot)
		mgr.ApplyInfo(&n.info, length, lazy)
		return
	}
	(*slot).setup(mgr, length)
	n := mut(slot)
	idx := n.idx
	if index <= idx {
		applyLeft(mgr, &n.left, idx, index, lazy)
	} else {
		if n.left != nil {
			l := mut(&n.left)
			mgr.ApplyInfo(&l.info, idx, lazy)
		}
		mgr.ApplyVal(&n.val, lazy)
		if index > idx+1 {
			applyLeft(mgr, &n.right, length-1-idx, index-1-idx, lazy)
		}
	}
	n.update(mgr, length)
}

// applyRight applies lazy to the suffix [index,length).
func applyRight[T, I, P, L any](mgr Manager[T, I, P, L], slot **node[T, I, P, L], length, index int, lazy L) {
	if index == length {
		return
	}
	if index == 0 {
		n := mut(slot)
		mgr.ApplyInfo(&n.info, length, lazy)
		return
	}
	(*slot).setup(mgr, length)
	n := mut(slot)
	idx := n.idx
	if index > idx+1 {
		applyRight(mgr, &n.right, length-1-idx, index-1-idx, lazy)
	} else {
		if n.right != nil {
			r := mut(&n.right)
			mgr.ApplyInfo(&r.info, length-1-idx, lazy)
		}
		if index <= idx {
			mgr.ApplyVal(&n.val, lazy)
			if index < idx {
				applyRight(mgr, &n.left, idx, index, lazy)
			}
		}
	}
	n.update(mgr, length)
}

// applyRange applies lazy to [lo,hi), delegating to the half-range
// primitives once a bound coincides with the subtree edge.
func applyRange[T, I, P, L any](mgr Manager[T, I, P, L], slot **node[T, I, P, L], length, lo, hi int, lazy L) {
	if lo == 0 {
		applyLeft(mgr, slot, length, hi, lazy)
		return
	}
	if hi == length {
		applyRight(mgr, slot, length, lo, lazy)
		return
	}
	(*slot).setup(mgr, length)
	n := mut(slot)
	idx := n.idx
	switch {
	case hi <= idx:
		applyRange(mgr, &n.left, idx, lo, hi, lazy)
	case lo > idx:
		applyRange(mgr, &n.right, length-1-idx, lo-1-idx, hi-1-idx, lazy)
	default:
		// the node's own element separates the bounds
		if n.left != nil {
			applyRight(mgr, &n.left, idx, lo, lazy)
		}
		if n.right != nil {
			applyLeft(mgr, &n.right, length-1-idx, hi-1-idx, lazy)
		}
		mgr.ApplyVal(&n.val, lazy)
	}
	n.update(mgr, length)
}

// prodRange computes the product of [lo,hi) for an interior range;
// the facade handles empty and boundary-touching ranges first.
func (n *node[T, I, P, L]) prodRange(mgr Manager[T, I, P, L], length, lo, hi int) P {
	for {
		if lo == 0 && hi == length {
			n.setup(mgr, length)
			return mgr.InfoProd(&n.info)
		}
		if lo == 0 {
			return n.prodLeft(mgr, length, hi)
		}
		if hi == length {
			return n.prodRight(mgr, length, lo)
		}
		n.setup(mgr, length)
		idx := n.idx
		switch {
		case hi <= idx:
			n = n.left
			length = idx
		case lo > idx:
			n = n.right
			lo -= idx + 1
			hi -= idx + 1
			length -= idx + 1
		default:
			return mgr.Op(
				mgr.Op(n.left.prodRight(mgr, idx, lo), mgr.ValProd(n.val)),
				n.right.prodLeft(mgr, length-1-idx, hi-1-idx))
		}
	}
}
