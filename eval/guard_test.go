package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/parse"
)

func testBindings() dlmatch.Bindings {
	return dlmatch.Bindings{
		"x": dl.NewClass("A"),
		"y": dl.NewSome(dl.NewObjectProperty("r"), dl.NewClass("B")),
		"z": dl.NewIntersection(dl.NewClass("A"), dl.NewClass("B"), dl.NewClass("C")),
		"s": dl.Set{dl.NewClass("A"), dl.NewClass("B")},
		"i": "http://example.org/onto#Thing",
		"c": dl.NewClass("r"),
		"p": dl.NewObjectProperty("r"),
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{`x == "A"`, true},
		{`x == "B"`, false},
		{`kind(x) == "Class"`, true},
		{`kind(y) == "ObjectSomeValuesFrom"`, true},
		{`kind(i) == ""`, true},
		{`iri(x) == "A"`, true},
		{`iri(y) == ""`, true},
		{`size(z) == 3`, true},
		{`size(s) == 2`, true},
		{`size(x) == 0`, true},
		{`local(i) == "Thing"`, true},
		{`local(iri(x)) == "A"`, true},
		{`x != z && size(z) > size(s)`, true},
		{`w == nil`, true},
		{`c == p`, true},
		{`kind(c) == "Class"`, true},
		{`kind(p) == "ObjectProperty"`, true},
		{`kind(p) == kind(c)`, false},
		{`iri(p) == iri(c)`, true},
		{`kind(w) == ""`, true},
		{`iri(w) == ""`, true},
		{`size(w) == 0`, true},
		{`local(w) == ""`, true},
		{`iri("http://example.org/onto#A") == "http://example.org/onto#A"`, true},
	}
	b := testBindings()
	for _, tc := range tests {
		g, err := CompileGuard(tc.src)
		if err != nil {
			t.Errorf("%s: compile error %v", tc.src, err)
			continue
		}
		got, err := g(b)
		if err != nil {
			t.Errorf("%s: eval error %v", tc.src, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %t want %t", tc.src, got, tc.want)
		}
	}
}

func TestGuardCompileErr(t *testing.T) {
	if _, err := CompileGuard(""); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := CompileGuard(`x ==`); err == nil {
		t.Errorf("expected syntax error")
	}
	if _, err := CompileGuard(`size("a")`); err == nil {
		t.Errorf("expected non boolean guard to fail")
	}
}

func TestLocalName(t *testing.T) {
	tests := map[string]string{
		"http://example.org/onto#Thing": "Thing",
		"http://example.org/Thing":      "Thing",
		"Thing":                         "Thing",
	}
	for in, want := range tests {
		if got := localName(in); got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
}

func TestGuardInFind(t *testing.T) {
	corpus := []dl.Node{
		dl.NewDomain(dl.NewObjectProperty("r"), dl.NewClass("r")),
		dl.NewDomain(dl.NewObjectProperty("r"), dl.NewClass("s")),
	}
	p, err := parse.Pattern([]byte("ObjectPropertyDomain: {property: '?p', domain: '?c'}"))
	if err != nil {
		t.Fatal(err)
	}
	g, err := CompileGuard(`kind(c) == "Class" && iri(c) == iri(p) && local(z) == ""`)
	if err != nil {
		t.Fatal(err)
	}
	res, err := dlmatch.FindContext(context.Background(), corpus, p, dlmatch.Where(g))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Axiom != corpus[0] {
		t.Errorf("got %d results", len(res))
	}
}
