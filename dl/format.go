package dl

import (
	"strings"
)

// Part identifies a piece of rendered functional syntax for painting.
type Part int

const (
	KindPart Part = iota
	IRIPart
	ParenPart
	ScalarPart
)

// Painter decorates a rendered piece of text, for example with color.
type Painter func(k Kind, part Part, s string) string

func plain(_ Kind, _ Part, s string) string { return s }

// Format renders a value in functional-style syntax, such as
// SubClassOf(A ObjectSomeValuesFrom(r B)). Entities render as their IRI.
func Format(v any) string {
	return FormatWith(v, nil)
}

// FormatWith is Format with every piece of output passed through p.
func FormatWith(v any, p Painter) string {
	if p == nil {
		p = plain
	}
	b := &strings.Builder{}
	format(b, v, p)
	return b.String()
}

func format(b *strings.Builder, v any, p Painter) {
	switch x := v.(type) {
	case nil:
		b.WriteString(p(NoKind, ScalarPart, "null"))
	case string:
		b.WriteString(p(NoKind, ScalarPart, x))
	case *Entity:
		b.WriteString(p(x.K, IRIPart, x.IRI))
	case Node:
		k := x.Kind()
		b.WriteString(p(k, KindPart, k.String()))
		b.WriteString(p(k, ParenPart, "("))
		for i, spec := range fieldSpecs[k] {
			if i > 0 {
				b.WriteByte(' ')
			}
			fv, _ := x.Field(spec.name)
			if s, ok := fv.(Set); ok {
				formatItems(b, s, p)
				continue
			}
			format(b, fv, p)
		}
		b.WriteString(p(k, ParenPart, ")"))
	case Set:
		b.WriteString(p(NoKind, ParenPart, "{"))
		formatItems(b, x, p)
		b.WriteString(p(NoKind, ParenPart, "}"))
	}
}

func formatItems(b *strings.Builder, s Set, p Painter) {
	for i, n := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		format(b, n, p)
	}
}
