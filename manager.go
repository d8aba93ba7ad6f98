package seqtree

// Manager supplies the algebra that parameterizes a Tree.  T is the
// element type, I the per-subtree bookkeeping ("info": a query
// aggregate plus any not-yet-pushed lazy operator), P the externally
// visible query result, and L the lazy operator callers pass to
// Apply.
//
// Info is derived state: the tree recomputes it from scratch with
// MakeInfo after every structural change, and trusts Propagate to
// push buffered lazy state down exactly once.  Op must be associative
// with Identity() as its identity; it need not be commutative, since
// the tree always combines products in sequence order.
type Manager[T, I, P, L any] interface {
	// MakeInfo builds the info for a subtree whose sequence is
	// left ++ [val] ++ right.  Absent subtrees are passed as nil
	// with length 0.  left and right must be treated as read-only.
	MakeInfo(left *I, llen int, val T, right *I, rlen int) I

	// Rev adjusts info for a subtree of n elements whose sequence
	// has just been reversed.
	Rev(info *I, n int)

	// ApplyInfo buffers lazy into the info of a subtree of n
	// elements, updating its aggregate to reflect the operator
	// applied to every element.
	ApplyInfo(info *I, n int, lazy L)

	// ApplyVal applies the lazy operator to a single element.
	ApplyVal(val *T, lazy L)

	// Propagate pushes any lazy state buffered in info down onto
	// the node's own value and onto each present child's info
	// (left has llen elements, right rlen).  Propagate must clear
	// the pushed lazy component from info before returning; an
	// implementation that leaves it behind will silently apply the
	// operator twice.
	Propagate(info *I, left *I, llen int, val *T, right *I, rlen int)

	// InfoProd converts a subtree's info to its product.
	InfoProd(info *I) P

	// ValProd converts a single element to its product.
	ValProd(val T) P

	// Identity returns the identity element of Op.
	Identity() P

	// Op combines the products of two adjacent ranges, in sequence
	// order.
	Op(left, right P) P
}
