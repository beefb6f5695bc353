package dl

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two values (nodes, sets or
// strings). The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Sets compare as sorted multisets, so the order in which they were
// built does not matter.
func Compare(a, b any) int {
	rankA := rank(a)
	rankB := rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch x := a.(type) {
	case string:
		return strings.Compare(x, b.(string))
	case Node:
		return compareNodes(x, b.(Node))
	case Set:
		return compareSets(x, b.(Set))
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b any) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a value.
// Order: nil < string < Node < Set < anything else
func rank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case string:
		return 1
	case Node:
		return 2
	case Set:
		return 3
	}
	return 100
}

func compareNodes(a, b Node) int {
	if a == b {
		return 0
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	for _, spec := range fieldSpecs[a.Kind()] {
		va, _ := a.Field(spec.name)
		vb, _ := b.Field(spec.name)
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return 0
}

func compareSets(a, b Set) int {
	sa := Sorted(a)
	sb := Sorted(b)
	for i := range min(len(sa), len(sb)) {
		if c := Compare(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(sa), len(sb))
}

// Sorted returns a sorted copy of s.
func Sorted(s Set) Set {
	res := slices.Clone(s)
	slices.SortFunc(res, func(a, b Node) int { return Compare(a, b) })
	return res
}
