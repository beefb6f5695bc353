package dlmatch

import (
	"testing"

	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"
)

var (
	clsA = dl.NewClass("A")
	clsB = dl.NewClass("B")
	clsC = dl.NewClass("C")
	prpR = dl.NewObjectProperty("r")
)

func TestSetPigeonhole(t *testing.T) {
	p := pattern.NewSet(pattern.V("x"), pattern.V("y"), pattern.V("z"))
	if _, ok := Match(dl.Set{clsA, clsB}, p); ok {
		t.Errorf("3 items matched 2 elements")
	}
	if _, ok := Match(dl.Set{clsA, clsB}, p.WithEllipsis()); ok {
		t.Errorf("3 items matched 2 elements with an ellipsis")
	}
}

func TestSetDistinctLiterals(t *testing.T) {
	target := dl.Set{clsA, dl.NewComplement(clsA), clsB}
	p := pattern.NewSet(pattern.Lit(clsB), pattern.Lit(clsA), pattern.Lit(dl.NewComplement(clsA)))
	b, ok := Match(target, p)
	if !ok {
		t.Fatalf("expected a match")
	}
	if len(b) != 0 {
		t.Errorf("literals bound %v", b)
	}
}

func TestSetBacktracks(t *testing.T) {
	notA := dl.NewComplement(clsA)
	typedX := pattern.Of(dl.ObjectComplementOfKind).As("x")
	tests := []struct {
		name   string
		target dl.Set
		items  []pattern.Pattern
	}{
		{"typed first", dl.Set{clsA, notA}, []pattern.Pattern{typedX, pattern.V("y")}},
		{"untyped first", dl.Set{notA, clsA}, []pattern.Pattern{pattern.V("y"), typedX}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := Match(tt.target, pattern.NewSet(tt.items...))
			if !ok {
				t.Fatalf("expected a match")
			}
			if !dl.Equal(b["x"], notA) || !dl.Equal(b["y"], clsA) {
				t.Errorf("got %v", b)
			}
		})
	}
}

func TestSetConflictBacktracks(t *testing.T) {
	target := dl.Set{dl.NewSome(prpR, clsA), clsB, dl.NewSome(prpR, clsB)}
	p := pattern.NewSet(
		pattern.Of(dl.ObjectSomeValuesFromKind, pattern.F("filler", pattern.V("f"))),
		pattern.V("f"),
	).WithEllipsis()
	b, ok := Match(target, p)
	if !ok {
		t.Fatalf("expected a match")
	}
	if len(b) != 1 || !dl.Equal(b["f"], clsB) {
		t.Errorf("got %v", b)
	}
}

func TestSetConflictFails(t *testing.T) {
	target := dl.Set{clsA, clsB}
	p := pattern.NewSet(
		pattern.Of(dl.ClassKind, pattern.F("iri", pattern.V("i"))),
		pattern.Of(dl.ClassKind, pattern.F("iri", pattern.V("i"))),
	)
	if b, ok := Match(target, p); ok {
		t.Errorf("distinct classes bound one iri: %v", b)
	}
}

func TestSetEllipsis(t *testing.T) {
	target := dl.Set{clsA, clsB, clsC}
	b, ok := Match(target, pattern.NewSet(pattern.V("x")).WithEllipsis())
	if !ok {
		t.Fatalf("expected a match")
	}
	if !dl.Equal(b["x"], clsA) && !dl.Equal(b["x"], clsB) && !dl.Equal(b["x"], clsC) {
		t.Errorf("got %v", b)
	}
	if _, ok := Match(target, pattern.NewSet(pattern.V("x"))); ok {
		t.Errorf("1 item matched 3 elements without an ellipsis")
	}
	if _, ok := Match(dl.Set{}, pattern.NewSet().WithEllipsis()); !ok {
		t.Errorf("empty ellipsis failed on an empty set")
	}
}

func TestSetNotACollection(t *testing.T) {
	if _, ok := Match(clsA, pattern.NewSet().WithEllipsis()); ok {
		t.Errorf("set pattern matched a class")
	}
}

func TestSetNoCandidate(t *testing.T) {
	p := pattern.NewSet(pattern.V("x"), pattern.Lit(clsC))
	if _, ok := Match(dl.Set{clsA, clsB}, p); ok {
		t.Errorf("matched without a candidate for C")
	}
}

func TestIndexSet(t *testing.T) {
	var s indexSet
	s1 := s.with(3)
	s2 := s1.with(70)
	if s.has(3) || s1.has(70) {
		t.Errorf("with modified its receiver")
	}
	if !s2.has(3) || !s2.has(70) || s2.has(64) {
		t.Errorf("got %v", s2)
	}
}
