/*
Package seqtree provides a randomized, partially-persistent balanced
sequence: an ordered, indexable container with logarithmic-time split,
merge, insertion, deletion, O(1) reversal, range aggregate queries and
range lazy updates.  The aggregate and update semantics are not
hard-coded; they are supplied by the caller through the Manager
interface, so one structure serves range-sum, range-min, range-assign,
affine maps, or any other monoid with a compatible lazy operator.

Balance

Trees are kept shallow by weighted coin flips rather than rotations:
merge picks its root from the left or right operand with probability
proportional to the operand's size, and insert makes the new element
the subtree root with probability 1/(n+1), the classic randomized
treap construction.  Depth is logarithmic in expectation, not worst
case.

Sharing

A Tree can be Clone()d in O(1).  Clones share subtrees and evolve
independently: any write first checks whether the node it is about to
touch is uniquely owned, and clones it (shallowly, children stay
shared) if not.  This is partial persistence: old versions stay
queryable and mutable for as long as a clone holds them, at the cost
of copy-on-write along the paths later writes actually touch.

Trees are not safe for concurrent use; even read paths flush pending
lazy state in place.

Inspiration

The shape of the structure follows the functional-collection school:
cheap versioning through structural sharing, with property-based
state-machine testing keeping the many interacting operations honest.
*/
package seqtree
