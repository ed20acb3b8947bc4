package sequence

// applyAssign sets n's assign tag to v and clears any pending add tag —
// a node never holds both at once — eagerly recomputing n's own
// value/sum/endpoints/monotone runs so they already reflect the assign
// even though the tag itself is still pending for n's children. The
// same function is used both when a top-level assign lands directly on
// an isolated range root and when push composes an incoming assign onto
// a child.
func applyAssign(n *node, v int64) {
	n.isAssigned = true
	n.assignedValue = v
	n.isAdded = false
	n.addedValue = 0

	n.value = v
	n.sum = v * int64(n.size)
	n.leftest = v
	n.rightest = v
	n.increasingPrefix = n.size
	n.decreasingPrefix = n.size
	n.increasingSuffix = n.size
	n.decreasingSuffix = n.size
}

// applyAdd adds delta to n. If n already carries a pending assign, delta
// folds into the assigned value rather than becoming a separate add tag;
// otherwise it accumulates onto any existing pending add. Adding a
// constant preserves monotonicity, so the run lengths are untouched.
func applyAdd(n *node, delta int64) {
	if n.isAssigned {
		n.assignedValue += delta
	} else if n.isAdded {
		n.addedValue += delta
	} else {
		n.isAdded = true
		n.addedValue = delta
	}

	n.value += delta
	n.sum += delta * int64(n.size)
	n.leftest += delta
	n.rightest += delta
}

// applyReverse toggles n's pending reversal and eagerly swaps the
// endpoint/monotone-run fields that depend on left-right order, without
// touching n's children: the structural swap of n.chd itself only
// happens when n is later pushed.
func applyReverse(n *node) {
	n.reversed = !n.reversed
	n.leftest, n.rightest = n.rightest, n.leftest
	n.increasingPrefix, n.decreasingSuffix = n.decreasingSuffix, n.increasingPrefix
	n.decreasingPrefix, n.increasingSuffix = n.increasingSuffix, n.decreasingPrefix
}

// push resolves n's pending tags one level down, in the order assign,
// add, reverse, composing each onto n's children via the same apply*
// functions used for a direct top-level op. It must be called on n
// before any algorithm inspects or rewires n's children; rotate/splay
// never push themselves.
func push(n *node) {
	if n.isAssigned && n.isAdded {
		fail("push", "node carries both a pending assign and a pending add")
	}

	left, right := n.chd[dirLeft], n.chd[dirRight]

	if n.isAssigned {
		if left != nil {
			applyAssign(left, n.assignedValue)
		}
		if right != nil {
			applyAssign(right, n.assignedValue)
		}
		n.isAssigned = false
	}

	if n.isAdded {
		if left != nil {
			applyAdd(left, n.addedValue)
		}
		if right != nil {
			applyAdd(right, n.addedValue)
		}
		n.isAdded = false
	}

	if n.reversed {
		n.chd[dirLeft], n.chd[dirRight] = right, left
		if left != nil {
			applyReverse(left)
		}
		if right != nil {
			applyReverse(right)
		}
		n.reversed = false
	}
}
