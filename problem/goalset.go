package problem

import (
	"math/bits"
	"strconv"
	"strings"
)

// GoalSet is an immutable set of goal indices backed by a string bitset.
// The zero value is the empty set. Encodings are canonical (no trailing zero
// bytes), so == on two GoalSets is set equality.
type GoalSet string

// FullGoalSet returns the set {0, ..., n-1}.
func FullGoalSet(n int) GoalSet {
	var s GoalSet
	for i := 0; i < n; i++ {
		s = s.With(i)
	}
	return s
}

// Has reports whether i is in the set.
func (s GoalSet) Has(i int) bool {
	b := i / 8
	if i < 0 || b >= len(s) {
		return false
	}
	return s[b]&(1<<(i%8)) != 0
}

// With returns s ∪ {i}.
func (s GoalSet) With(i int) GoalSet {
	if i < 0 || s.Has(i) {
		return s
	}
	buf := []byte(s)
	for len(buf) <= i/8 {
		buf = append(buf, 0)
	}
	buf[i/8] |= 1 << (i % 8)
	return GoalSet(buf)
}

// Without returns s \ {i}.
func (s GoalSet) Without(i int) GoalSet {
	if !s.Has(i) {
		return s
	}
	buf := []byte(s)
	buf[i/8] &^= 1 << (i % 8)
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	return GoalSet(buf)
}

// Len returns the number of members.
func (s GoalSet) Len() int {
	n := 0
	for i := 0; i < len(s); i++ {
		n += bits.OnesCount8(s[i])
	}
	return n
}

// Indices returns the members in ascending order.
func (s GoalSet) Indices() []int {
	out := make([]int, 0, s.Len())
	for b := 0; b < len(s); b++ {
		for bit := 0; bit < 8; bit++ {
			if s[b]&(1<<bit) != 0 {
				out = append(out, b*8+bit)
			}
		}
	}
	return out
}

// String renders the set as {i, j, ...}.
func (s GoalSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range s.Indices() {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}

