package dlmatch

import (
	"errors"
	"testing"

	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"
)

func TestFindAndReplace(t *testing.T) {
	corpus := testCorpus()
	before := make([]string, len(corpus))
	for i, ax := range corpus {
		before[i] = dl.Format(ax)
	}
	// SubClassOf(x y) -> SubClassOf(ObjectComplementOf(y) ObjectComplementOf(x))
	tmpl := pattern.Of(dl.SubClassOfKind,
		pattern.F("subClass", pattern.Of(dl.ObjectComplementOfKind, pattern.F("operand", pattern.V("y")))),
		pattern.F("superClass", pattern.Of(dl.ObjectComplementOfKind, pattern.F("operand", pattern.V("x")))))
	reps, err := FindAndReplace(corpus, subClassXY, Template(tmpl))
	if err != nil {
		t.Fatal(err)
	}
	if len(reps) != 3 {
		t.Fatalf("got %d replacements", len(reps))
	}
	want := dl.NewSubClassOf(dl.NewComplement(clsB), dl.NewComplement(clsA))
	if !dl.Equal(reps[0].New, want) {
		t.Errorf("got %s, want %s", dl.Format(reps[0].New), dl.Format(want))
	}
	if reps[0].Old != corpus[0] {
		t.Errorf("old axiom is %s", dl.Format(reps[0].Old))
	}
	for i, ax := range corpus {
		if dl.Format(ax) != before[i] {
			t.Errorf("corpus axiom %d changed to %s", i, dl.Format(ax))
		}
	}
}

func TestGeneratorGetsCopy(t *testing.T) {
	gen := func(b Bindings) (dl.Node, error) {
		x := b["x"].(dl.Node)
		delete(b, "x")
		return dl.NewSubClassOf(x, x), nil
	}
	reps, err := FindAndReplace(testCorpus(), subClassXY, gen)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range reps {
		if _, ok := r.Bindings["x"]; !ok {
			t.Errorf("generator changed the bindings of %s", dl.Format(r.Old))
		}
	}
}

func TestTemplate(t *testing.T) {
	b := Bindings{"x": clsA, "y": clsB, "ops": dl.Set{clsB, clsC}, "iri": "D"}
	tests := []struct {
		name string
		p    pattern.Pattern
		want dl.Node
		err  error
	}{
		{
			name: "equivalent",
			p:    pattern.Of(dl.EquivalentClassesKind, pattern.F("classExpressions", pattern.NewSet(pattern.V("x"), pattern.V("y")))),
			want: dl.NewEquivalent(clsA, clsB),
		},
		{
			name: "splice",
			p:    pattern.Of(dl.ObjectUnionOfKind, pattern.F("operands", pattern.NewSet(pattern.V("x"), pattern.V("ops")))),
			want: dl.NewUnion(clsA, clsB, clsC),
		},
		{
			name: "set var",
			p:    pattern.Of(dl.DisjointClassesKind, pattern.F("classExpressions", pattern.V("ops"))),
			want: dl.NewDisjoint(clsC, clsB),
		},
		{
			name: "entity",
			p:    pattern.Of(dl.ClassKind, pattern.F("iri", pattern.V("iri"))),
			want: dl.NewClass("D"),
		},
		{
			name: "literal",
			p:    pattern.Of(dl.SubClassOfKind, pattern.F("subClass", pattern.V("x")), pattern.F("superClass", pattern.Lit(clsC))),
			want: dl.NewSubClassOf(clsA, clsC),
		},
		{
			name: "unbound",
			p:    pattern.Of(dl.SubClassOfKind, pattern.F("subClass", pattern.V("x")), pattern.F("superClass", pattern.V("nope"))),
			err:  ErrUnbound,
		},
		{
			name: "bad field",
			p:    pattern.Of(dl.SubClassOfKind, pattern.F("subClass", pattern.V("x")), pattern.F("superClass", pattern.V("iri"))),
			err:  dl.ErrBadField,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Template(tt.p)(b)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("got error %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !dl.Equal(got, tt.want) {
				t.Errorf("got %s, want %s", dl.Format(got), dl.Format(tt.want))
			}
		})
	}
	if _, err := Template(pattern.NewSet(pattern.V("x")).WithEllipsis())(b); err == nil {
		t.Errorf("expected error for a template with an ellipsis")
	}
	if _, err := Template(pattern.V("ops"))(b); err == nil {
		t.Errorf("expected error for a template giving a set")
	}
}
