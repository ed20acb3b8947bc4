package sequence

import g "github.com/zyedidia/generic"

// geq/leq wrap g.Compare to name the two comparisons the monotone-run
// formulas need.
func geq(a, b int64) bool { return g.Compare(a, b, g.Less[int64]) >= 0 }
func leq(a, b int64) bool { return g.Compare(a, b, g.Less[int64]) <= 0 }

// update recomputes n's aggregates from its own value and its children's
// aggregates. It assumes both children (if any) have already been
// pushed, so their aggregates already reflect their own pending tags,
// and that n itself carries no pending tag affecting its own value —
// push n first if that might not hold.
func update(n *node) {
	left, right := n.chd[dirLeft], n.chd[dirRight]

	n.size = size0(left) + size0(right) + 1
	n.sum = sum0(left) + sum0(right) + n.value

	if left != nil {
		n.leftest = left.leftest
	} else {
		n.leftest = n.value
	}
	if right != nil {
		n.rightest = right.rightest
	} else {
		n.rightest = n.value
	}

	n.increasingPrefix = monotonePrefix(n, left, right, true)
	n.decreasingPrefix = monotonePrefix(n, left, right, false)
	n.increasingSuffix = monotoneSuffix(n, left, right, true)
	n.decreasingSuffix = monotoneSuffix(n, left, right, false)
}

// monotonePrefix computes the length of the longest run starting at the
// left end of n's subtree that is monotone in the requested direction:
// increasing selects the non-decreasing (≥) variant, !increasing the
// non-increasing (≤) variant ("decreasing").
func monotonePrefix(n, left, right *node, increasing bool) int {
	cmp := leq
	if increasing {
		cmp = geq
	}

	start := 0
	leftRun := n.value // no left child: run length is 0, use n's own value in place of left.rightest
	leftSpansWhole := left == nil
	if left != nil {
		start = prefixRun(left, increasing)
		leftRun = left.rightest
		leftSpansWhole = prefixRun(left, increasing) == left.size
	}

	if !(leftSpansWhole && cmp(n.value, leftRun)) {
		return start
	}

	run := start + 1
	if right != nil && cmp(rightLeftest(right), n.value) {
		run += prefixRun(right, increasing)
	}
	return run
}

// monotoneSuffix mirrors monotonePrefix starting from the right.
func monotoneSuffix(n, left, right *node, increasing bool) int {
	cmp := geq
	if increasing {
		cmp = leq
	}

	start := 0
	rightRun := n.value
	rightSpansWhole := right == nil
	if right != nil {
		start = suffixRun(right, increasing)
		rightRun = right.leftest
		rightSpansWhole = suffixRun(right, increasing) == right.size
	}

	if !(rightSpansWhole && cmp(n.value, rightRun)) {
		return start
	}

	run := start + 1
	if left != nil && cmp(leftRightest(left), n.value) {
		run += suffixRun(left, increasing)
	}
	return run
}

func prefixRun(n *node, increasing bool) int {
	if increasing {
		return n.increasingPrefix
	}
	return n.decreasingPrefix
}

func suffixRun(n *node, increasing bool) int {
	if increasing {
		return n.increasingSuffix
	}
	return n.decreasingSuffix
}

func rightLeftest(n *node) int64 { return n.leftest }
func leftRightest(n *node) int64 { return n.rightest }
