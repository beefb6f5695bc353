package libdiff

import (
	"testing"

	"github.com/signadot/dlmatch/dl"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
		changed  bool
	}{
		{"A", "A", "A", false},
		{"SubClassOf(A B)", "SubClassOf(A C)", "SubClassOf(A [-B-]{+C+})", true},
		{"SubClassOf(A B)", "SubClassOf(A BC)", "SubClassOf(A B{+C+})", true},
		{"ClassAssertion(Person i)", "ClassAssertion(Person j)", "ClassAssertion(Person [-i-]{+j+})", true},
		{"A", "AB", "[-A-]{+AB+}", true},
		{"SubClassOf(A B)", "EquivalentClasses(C D)", "[-SubClassOf(A B)-]{+EquivalentClasses(C D)+}", true},
	}
	for _, tc := range tests {
		got, changed := DiffString(tc.from, tc.to, DefaultMarkers)
		if changed != tc.changed {
			t.Errorf("%q -> %q: changed %v, want %v", tc.from, tc.to, changed, tc.changed)
		}
		if got != tc.want {
			t.Errorf("%q -> %q: got %q want %q", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDiffNodes(t *testing.T) {
	a, b := dl.NewClass("A"), dl.NewClass("B")
	old := dl.NewSubClassOf(a, b)
	got, changed := DiffNodes(old, dl.NewSubClassOf(a, b), DefaultMarkers)
	if changed {
		t.Errorf("equal nodes reported changed: %q", got)
	}
	_, changed = DiffNodes(old, dl.NewEquivalent(a, b), DefaultMarkers)
	if !changed {
		t.Errorf("different nodes reported unchanged")
	}
}

func TestDiffSize(t *testing.T) {
	diffs := diffpatch.New().DiffMain("abc", "abd", false)
	if n := diffSize(diffs); n != 2 {
		t.Errorf("got %d want 2", n)
	}
	if n := diffSize(diffpatch.New().DiffMain("abc", "abc", false)); n != 0 {
		t.Errorf("got %d want 0", n)
	}
}
