package sequence

// searchByRank descends from root looking for the node at 1-based rank k
// within the subtree rooted at root, pushing every node it visits before
// reading its children, then splays the found node to the root of its
// tree and returns it. root must be a standalone subtree (nil parent);
// the returned node is too.
func searchByRank(root *node, k int) *node {
	if root == nil {
		fail("searchByRank", "rank out of range of an empty subtree")
	}

	offset := 0
	cur := root
	for {
		push(cur)
		leftSize := size0(cur.chd[dirLeft])
		switch {
		case leftSize+offset+1 == k:
			splay(cur)
			return cur
		case k <= offset+leftSize:
			cur = cur.chd[dirLeft]
		default:
			offset += leftSize + 1
			cur = cur.chd[dirRight]
		}
	}
}

// split detaches the first k nodes of root (in rank order) into l, and
// returns the rest as r. root must be a standalone subtree (or nil);
// both returned subtrees are standalone.
func split(root *node, k int) (l, r *node) {
	if k <= 0 || root == nil {
		return nil, root
	}
	if k >= size0(root) {
		return root, nil
	}

	m := searchByRank(root, k)
	r = m.chd[dirRight]
	if r != nil {
		r.parent = nil
	}
	m.chd[dirRight] = nil
	update(m)
	return m, r
}

// merge concatenates l and r, in that order, into a single subtree.
// The caller is responsible for l's elements preceding r's.
func merge(l, r *node) *node {
	if l == nil {
		if r != nil {
			r.parent = nil
		}
		return r
	}
	if r == nil {
		l.parent = nil
		return l
	}

	m := searchByRank(l, size0(l)) // splay l's rightmost node to its root
	m.chd[dirRight] = r
	r.parent = m
	update(m)
	return m
}

// merge3 concatenates l, mid, r in order.
func merge3(l, mid, r *node) *node {
	return merge(merge(l, mid), r)
}
