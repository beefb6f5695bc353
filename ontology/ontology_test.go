package ontology

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/parse"
)

const corpusDoc = `
format: "1.2"
iri: http://example.org/onto
axioms:
- SubClassOf: {subClass: A, superClass: B}
- SubClassOf:
    subClass: B
    superClass:
      ObjectSomeValuesFrom: {property: r, filler: C}
- EquivalentClasses:
    classExpressions: [A, C]
`

func axiomsEqual(t *testing.T, got, want []dl.Node) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d axioms want %d", len(got), len(want))
	}
	for i := range got {
		if !dl.Equal(got[i], want[i]) {
			t.Errorf("axiom %d: got %s want %s", i, dl.Format(got[i]), dl.Format(want[i]))
		}
	}
}

func TestDecode(t *testing.T) {
	o, err := Decode([]byte(corpusDoc))
	if err != nil {
		t.Fatal(err)
	}
	if o.IRI != "http://example.org/onto" || o.Format != "1.2" {
		t.Errorf("got iri %q format %q", o.IRI, o.Format)
	}
	a, b, c := dl.NewClass("A"), dl.NewClass("B"), dl.NewClass("C")
	axiomsEqual(t, o.Axioms(), []dl.Node{
		dl.NewSubClassOf(a, b),
		dl.NewSubClassOf(b, dl.NewSome(dl.NewObjectProperty("r"), c)),
		dl.NewEquivalent(c, a),
	})
}

func TestDecodeErr(t *testing.T) {
	tests := []struct {
		doc  string
		want error
	}{
		{"axioms: []", ErrFormat},
		{"format: \"2.0\"\naxioms: []", ErrFormat},
		{"format: banana", ErrFormat},
		{"- A", parse.ErrShape},
		{"format: \"1.0\"\nfoo: bar", parse.ErrShape},
		{"format: \"1.0\"\naxioms: [A]", parse.ErrShape},
		{"format: \"1.0\"\naxioms: {A: B}", parse.ErrShape},
	}
	for _, tc := range tests {
		_, err := Decode([]byte(tc.doc))
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: got %v want %v", tc.doc, err, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	if err := os.WriteFile(path, []byte(corpusDoc), 0644); err != nil {
		t.Fatal(err)
	}
	o, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if o.Path != path {
		t.Errorf("path %q", o.Path)
	}
	if len(o.Axioms()) != 3 {
		t.Errorf("got %d axioms", len(o.Axioms()))
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error loading missing file")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	o, err := Decode([]byte(corpusDoc))
	if err != nil {
		t.Fatal(err)
	}
	d, err := o.YAML()
	if err != nil {
		t.Fatal(err)
	}
	o2, err := Decode(d)
	if err != nil {
		t.Fatalf("%v decoding\n%s", err, d)
	}
	axiomsEqual(t, o2.Axioms(), o.Axioms())
	if o2.IRI != o.IRI {
		t.Errorf("iri %q want %q", o2.IRI, o.IRI)
	}
}

func testReplacements(o *Ontology) []dlmatch.Replacement {
	ax := o.Axioms()
	sc := ax[0].(*dl.SubClassOf)
	return []dlmatch.Replacement{{
		Old: ax[0],
		New: dl.NewSubClassOf(sc.SubClass, dl.NewIntersection(sc.SuperClass, dl.NewClass("D"))),
	}}
}

func TestSubstitute(t *testing.T) {
	o, err := Decode([]byte(corpusDoc))
	if err != nil {
		t.Fatal(err)
	}
	reps := testReplacements(o)
	o2 := o.Substitute(reps)
	if o2.Axioms()[0] != reps[0].New {
		t.Errorf("axiom 0 not replaced: %s", dl.Format(o2.Axioms()[0]))
	}
	if o.Axioms()[0] != reps[0].Old {
		t.Errorf("original modified")
	}
	for i := 1; i < 3; i++ {
		if o2.Axioms()[i] != o.Axioms()[i] {
			t.Errorf("axiom %d changed", i)
		}
	}
}

func TestJSONPatch(t *testing.T) {
	o, err := Decode([]byte(corpusDoc))
	if err != nil {
		t.Fatal(err)
	}
	reps := testReplacements(o)
	doc, err := o.JSON()
	if err != nil {
		t.Fatal(err)
	}
	patch, err := o.JSONPatch(reps)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatalf("%v applying\n%s", err, patch)
	}
	o2, err := Decode(out)
	if err != nil {
		t.Fatalf("%v decoding\n%s", err, out)
	}
	axiomsEqual(t, o2.Axioms(), o.Substitute(reps).Axioms())
}

func TestJSONPatchEmpty(t *testing.T) {
	o := New(dl.NewSubClassOf(dl.NewClass("A"), dl.NewClass("B")))
	patch, err := o.JSONPatch(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := o.JSON()
	if err != nil {
		t.Fatal(err)
	}
	out, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	o2, err := Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	axiomsEqual(t, o2.Axioms(), o.Axioms())
}
