package seqtree

// Ready-made managers for the two most common algebras, usable
// directly or as templates for writing your own.

// AddSumInfo is the subtree bookkeeping for AddSum: the range sum
// plus a pending addend not yet pushed to the children.
type AddSumInfo struct {
	sum int64
	add int64
}

// AddSum is a Manager for int64 sequences with range-add updates and
// range-sum queries, the textbook lazy algebra.
type AddSum struct{}

// NewAddSum returns an empty int64 sequence with range-add updates
// and range-sum queries.
func NewAddSum() *Tree[int64, AddSumInfo, int64, int64] {
	return New[int64, AddSumInfo, int64, int64](AddSum{})
}

func (AddSum) MakeInfo(left *AddSumInfo, llen int, val int64, right *AddSumInfo, rlen int) AddSumInfo {
	s := val
	if left != nil {
		s += left.sum
	}
	if right != nil {
		s += right.sum
	}
	return AddSumInfo{sum: s}
}

func (AddSum) Rev(info *AddSumInfo, n int) {}

func (AddSum) ApplyInfo(info *AddSumInfo, n int, lazy int64) {
	info.sum += lazy * int64(n)
	info.add += lazy
}

func (AddSum) ApplyVal(val *int64, lazy int64) {
	*val += lazy
}

func (AddSum) Propagate(info *AddSumInfo, left *AddSumInfo, llen int, val *int64, right *AddSumInfo, rlen int) {
	*val += info.add
	if left != nil {
		left.sum += info.add * int64(llen)
		left.add += info.add
	}
	if right != nil {
		right.sum += info.add * int64(rlen)
		right.add += info.add
	}
	info.add = 0
}

func (AddSum) InfoProd(info *AddSumInfo) int64 { return info.sum }
func (AddSum) ValProd(val int64) int64         { return val }
func (AddSum) Identity() int64                 { return 0 }
func (AddSum) Op(left, right int64) int64      { return left + right }

// ConcatInfo is the subtree bookkeeping for AssignConcat: the
// concatenation of the subtree's runes, plus a pending range-assign.
type ConcatInfo struct {
	cat     string
	pending rune
	has     bool
}

// AssignConcat is a Manager for rune sequences with range-assign
// updates and concatenation queries.  Concatenation is not
// commutative, which makes this algebra a sharp test of combine
// order, and reversal actually has to do work.
type AssignConcat struct{}

// NewAssignConcat returns an empty rune sequence with range-assign
// updates and string-concatenation queries.
func NewAssignConcat() *Tree[rune, ConcatInfo, string, rune] {
	return New[rune, ConcatInfo, string, rune](AssignConcat{})
}

func (AssignConcat) MakeInfo(left *ConcatInfo, llen int, val rune, right *ConcatInfo, rlen int) ConcatInfo {
	cat := string(val)
	if left != nil {
		cat = left.cat + cat
	}
	if right != nil {
		cat += right.cat
	}
	return ConcatInfo{cat: cat}
}

func (AssignConcat) Rev(info *ConcatInfo, n int) {
	r := []rune(info.cat)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	info.cat = string(r)
}

func (AssignConcat) ApplyInfo(info *ConcatInfo, n int, lazy rune) {
	info.cat = repeatRune(lazy, n)
	info.pending = lazy
	info.has = true
}

func (AssignConcat) ApplyVal(val *rune, lazy rune) {
	*val = lazy
}

func (AssignConcat) Propagate(info *ConcatInfo, left *ConcatInfo, llen int, val *rune, right *ConcatInfo, rlen int) {
	if !info.has {
		return
	}
	*val = info.pending
	if left != nil {
		left.cat = repeatRune(info.pending, llen)
		left.pending = info.pending
		left.has = true
	}
	if right != nil {
		right.cat = repeatRune(info.pending, rlen)
		right.pending = info.pending
		right.has = true
	}
	info.has = false
}

func (AssignConcat) InfoProd(info *ConcatInfo) string { return info.cat }
func (AssignConcat) ValProd(val rune) string          { return string(val) }
func (AssignConcat) Identity() string                 { return "" }
func (AssignConcat) Op(left, right string) string     { return left + right }

func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
