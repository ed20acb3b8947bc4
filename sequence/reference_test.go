package sequence_test

import (
	"fmt"
	"strconv"
	"strings"
)

// snapshot parses Sequence.String() back into a []int64 so tests can
// compare the tree's full in-order content against refSeq without a
// bulk-export API.
func snapshot(s fmt.Stringer) []int64 {
	text := s.String()
	if text == "" {
		return nil
	}
	fields := strings.Fields(text)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}

// refSeq is a plain-slice reference oracle used to cross-check Sequence:
// apply the same operation to both, then compare.
type refSeq []int64

func (r refSeq) sum(l, r2 int) int64 {
	var total int64
	for i := l; i <= r2; i++ {
		total += r[i-1]
	}
	return total
}

func (r refSeq) assign(l, r2 int, v int64) {
	for i := l; i <= r2; i++ {
		r[i-1] = v
	}
}

func (r refSeq) add(l, r2 int, delta int64) {
	for i := l; i <= r2; i++ {
		r[i-1] += delta
	}
}

func (r refSeq) reverse(l, r2 int) {
	for i, j := l-1, r2-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
}

func (r refSeq) insert(v int64, pos int) refSeq {
	out := make(refSeq, 0, len(r)+1)
	out = append(out, r[:pos]...)
	out = append(out, v)
	out = append(out, r[pos:]...)
	return out
}

func (r refSeq) erase(k int) refSeq {
	out := make(refSeq, 0, len(r)-1)
	out = append(out, r[:k-1]...)
	out = append(out, r[k:]...)
	return out
}

// nextPermutation is the textbook in-place algorithm restricted to
// [l, r] (1-based, inclusive), wrapping to ascending when already
// maximal.
func (r refSeq) nextPermutation(l, r2 int) {
	seg := r[l-1 : r2]
	i := len(seg) - 2
	for i >= 0 && seg[i] >= seg[i+1] {
		i--
	}
	if i < 0 {
		reverseSlice(seg)
		return
	}
	j := len(seg) - 1
	for seg[j] <= seg[i] {
		j--
	}
	seg[i], seg[j] = seg[j], seg[i]
	reverseSlice(seg[i+1:])
}

// prevPermutation mirrors nextPermutation, wrapping to descending when
// already minimal.
func (r refSeq) prevPermutation(l, r2 int) {
	seg := r[l-1 : r2]
	i := len(seg) - 2
	for i >= 0 && seg[i] <= seg[i+1] {
		i--
	}
	if i < 0 {
		reverseSlice(seg)
		return
	}
	j := len(seg) - 1
	for seg[j] >= seg[i] {
		j--
	}
	seg[i], seg[j] = seg[j], seg[i]
	reverseSlice(seg[i+1:])
}

func reverseSlice(s []int64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func (r refSeq) clone() refSeq {
	out := make(refSeq, len(r))
	copy(out, r)
	return out
}

func equalSlices(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
