package sequence

// rotate moves n up one level, preserving in-order, rewiring the three
// edges between n, its parent, and its grandparent. It never pushes:
// every caller is required to have already pushed every node on the
// root-to-n path (searchByRank does this during its descent), so n's own
// child pointers are already physically correct before rotate touches
// them.
func rotate(n *node) {
	p := n.parent
	if p == nil {
		fail("rotate", "node has no parent to rotate above")
	}
	gp := p.parent
	d := p.dirOf(n)
	od := d.other()

	moved := n.chd[od]
	p.setChild(d, moved)
	n.setChild(od, p)

	if gp != nil {
		gd := gp.dirOf(p)
		gp.setChild(gd, n)
	} else {
		n.parent = nil
	}

	update(p)
	update(n)
	if gp != nil {
		update(gp)
	}
}

// splay promotes n to the root of its tree via the standard three-case
// amortised scheme: zig once n's parent is the root, zig-zig when n and
// its parent lean the same way, zig-zag otherwise. Like rotate, it
// assumes the root-to-n path has already been pushed.
func splay(n *node) {
	for {
		p := n.parent
		if p == nil {
			return
		}
		gp := p.parent
		if gp == nil {
			rotate(n) // zig
			return
		}
		if gp.dirOf(p) == p.dirOf(n) {
			rotate(p) // zig-zig
			rotate(n)
		} else {
			rotate(n) // zig-zag
			rotate(n)
		}
	}
}
