package sequence

import (
	"fmt"
	"io"
	"strings"
)

// String returns the sequence's values, in order, space-separated.
// Development use only: like any other traversal it pushes lazy tags as
// it walks, restructuring the tree as a side effect.
func (s *Sequence) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

// WriteTo writes the sequence's effective values, in order and
// space-separated, to w.
func (s *Sequence) WriteTo(w io.Writer) (n int64, err error) {
	var walk func(nd *node)
	first := true
	walk = func(nd *node) {
		if nd == nil || err != nil {
			return
		}
		push(nd)
		walk(nd.chd[dirLeft])
		if err != nil {
			return
		}
		if !first {
			var m int
			if m, err = io.WriteString(w, " "); err != nil {
				n += int64(m)
				return
			}
			n += int64(m)
		}
		first = false
		var m int
		if m, err = fmt.Fprintf(w, "%d", nd.value); err != nil {
			n += int64(m)
			return
		}
		n += int64(m)
		walk(nd.chd[dirRight])
	}
	walk(s.root)
	return n, err
}

// dumpString wraps dump the way gaissmai/bart's dumper.go wraps its own
// tree dump around a strings.Builder.
func (s *Sequence) dumpString() string {
	w := new(strings.Builder)
	if err := s.dump(w); err != nil {
		panic(err)
	}
	return w.String()
}

// dump writes a structural, indented view of the tree to w, one node per
// line, showing each node's effective value, size, and any pending tags
// still waiting to be pushed. Useful when debugging push/pull ordering —
// not part of the package's correctness surface.
func (s *Sequence) dump(w io.Writer) error {
	return dumpRec(w, s.root, 0)
}

func dumpRec(w io.Writer, n *node, depth int) error {
	if n == nil {
		return nil
	}
	indent := strings.Repeat(".", depth)
	if _, err := fmt.Fprintf(w, "%svalue=%d size=%d%s\n", indent, n.value, n.size, tagSummary(n)); err != nil {
		return err
	}
	if err := dumpRec(w, n.chd[dirLeft], depth+1); err != nil {
		return err
	}
	return dumpRec(w, n.chd[dirRight], depth+1)
}

func tagSummary(n *node) string {
	var parts []string
	if n.isAssigned {
		parts = append(parts, fmt.Sprintf("assign=%d", n.assignedValue))
	}
	if n.isAdded {
		parts = append(parts, fmt.Sprintf("add=%d", n.addedValue))
	}
	if n.reversed {
		parts = append(parts, "reversed")
	}
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, ",") + "]"
}
