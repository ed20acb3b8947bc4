package sequence

import g "github.com/zyedidia/generic"

// NextPermutation advances [l, r] to its next lexicographic permutation
// (Narayana Pandita's algorithm), wrapping to the sorted-ascending
// permutation when the range is already at its lexicographic maximum.
func (s *Sequence) NextPermutation(l, r int) {
	left, mid, right := s.isolate(l, r)
	s.root = merge3(left, s.advancePermutation(mid, true), right)
}

// PrevPermutation is NextPermutation's mirror: it retreats [l, r] to its
// previous lexicographic permutation, wrapping to the sorted-descending
// permutation when the range is already at its minimum.
func (s *Sequence) PrevPermutation(l, r int) {
	left, mid, right := s.isolate(l, r)
	s.root = merge3(left, s.advancePermutation(mid, false), right)
}

// advancePermutation advances or retreats a standalone subtree mid to
// its next permutation in either direction: forward uses
// decreasingSuffix and looks for the rightmost element strictly greater
// than the pivot; backward uses increasingSuffix and looks for the
// rightmost element strictly less. It returns the (possibly different)
// root of the resulting subtree.
func (s *Sequence) advancePermutation(mid *node, forward bool) *node {
	var k int
	if forward {
		k = mid.decreasingSuffix
	} else {
		k = mid.increasingSuffix
	}

	if k == mid.size {
		// The whole range is already monotone the "wrong" way for this
		// direction: it's the extreme permutation, so wrap by reversing.
		applyReverse(mid)
		return mid
	}

	pivotPos := mid.size - k
	midLeft, midRight := split(mid, pivotPos)

	pivot := searchByRank(midLeft, size0(midLeft)) // rightmost of midLeft
	target := pivot.value

	found := findRightmostBeyond(midRight, target, forward)

	pivot.value, found.value = found.value, pivot.value
	update(pivot)
	update(found)

	applyReverse(found) // found is now midRight's root

	return merge(pivot, found)
}

// findRightmostBeyond descends root (which must already be monotone in
// the direction opposite to beyond) looking for the rightmost node whose
// value is strictly greater than target (beyond=true, used going
// forward) or strictly less (beyond=false, used going backward). It
// pushes every node it visits and splays the match to root before
// returning it. Ties are broken by taking the rightmost qualifying rank.
func findRightmostBeyond(root *node, target int64, beyond bool) *node {
	var found *node
	cur := root
	for cur != nil {
		push(cur)
		var qualifies bool
		if beyond {
			qualifies = g.Compare(cur.value, target, g.Less[int64]) > 0
		} else {
			qualifies = g.Compare(cur.value, target, g.Less[int64]) < 0
		}
		if qualifies {
			found = cur
			cur = cur.chd[dirRight]
		} else {
			cur = cur.chd[dirLeft]
		}
	}
	if found == nil {
		fail("advancePermutation", "no qualifying element found beyond a non-extreme suffix")
	}
	splay(found)
	return found
}
