package seqtree

import "math/bits"

// defaultSeed is an arbitrary nonzero xorshift state used when the
// caller doesn't care about reproducing a particular shape sequence.
const defaultSeed uint64 = 0xf285692d6bf31f57

// rng is a xorshift64 generator used only to pick balance points.
// Shapes are randomized but the logical sequence contents never
// depend on its output.
type rng struct {
	state uint64
}

func newRng(seed uint64) rng {
	if seed == 0 {
		// xorshift has a fixed point at zero
		seed = defaultSeed
	}
	return rng{seed}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 7
	r.state ^= r.state >> 9
	return r.state
}

// choose returns true with probability a/(a+b), via a widened
// multiply so that a+b may be anything up to the full uint64 range.
func (r *rng) choose(a, b int) bool {
	hi, _ := bits.Mul64(r.next(), uint64(a)+uint64(b))
	return hi < uint64(a)
}

// fork advances this generator once and returns a second generator
// whose state is remixed with the inverse shift order, so the two
// streams make decorrelated draws from here on.  Used when one tree
// is split into two that must balance independently.
func (r *rng) fork() rng {
	r.next()
	f := *r
	f.state ^= f.state >> 7
	f.state ^= f.state << 9
	return f
}
