package dl

import "testing"

func TestFormat(t *testing.T) {
	a := NewClass("A")
	b := NewClass("B")
	r := NewObjectProperty("r")
	tests := []struct {
		in   any
		want string
	}{
		{a, "A"},
		{"x", "x"},
		{nil, "null"},
		{NewSubClassOf(a, NewSome(r, b)), "SubClassOf(A ObjectSomeValuesFrom(r B))"},
		{NewEquivalent(a, NewIntersection(b, NewComplement(a))), "EquivalentClasses(A ObjectIntersectionOf(B ObjectComplementOf(A)))"},
		{Set{a, b}, "{A B}"},
		{NewPropertyAssertion(r, NewIndividual("i"), NewIndividual("j")), "ObjectPropertyAssertion(r i j)"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatWith(t *testing.T) {
	paint := func(_ Kind, part Part, s string) string {
		if part == KindPart {
			return "<" + s + ">"
		}
		return s
	}
	got := FormatWith(NewComplement(NewClass("A")), paint)
	if want := "<ObjectComplementOf>(A)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
