// Package pattern provides the query side vocabulary of dlmatch:
// literals, variables, field patterns and set patterns.
package pattern

import (
	"strings"

	"github.com/signadot/dlmatch/dl"
)

// Pattern is one of *Literal, *Var, *Fields or *Set.
type Pattern interface {
	String() string
	pattern()
}

// Literal matches a target value structurally equal to Value.
type Literal struct {
	Value any
}

// Var matches anything and binds it to Name.
type Var struct {
	Name string
}

// Field pairs an accessor name with the pattern its value must match.
type Field struct {
	Name    string
	Pattern Pattern
}

// Fields matches a node whose kind satisfies Type (when not
// dl.NoKind) and whose named fields match, in order. If Bind is not
// empty the matched node itself is bound to it.
type Fields struct {
	Type   dl.Kind
	Bind   string
	Fields []Field
}

// Set matches an unordered collection: each item must match a distinct
// element. Without Ellipsis every element must be used.
type Set struct {
	Items    []Pattern
	Ellipsis bool
}

func (*Literal) pattern() {}
func (*Var) pattern()     {}
func (*Fields) pattern()  {}
func (*Set) pattern()     {}

func Lit(v any) *Literal {
	return &Literal{Value: v}
}

func V(name string) *Var {
	return &Var{Name: name}
}

func F(name string, p Pattern) Field {
	return Field{Name: name, Pattern: p}
}

func Of(k dl.Kind, fields ...Field) *Fields {
	return &Fields{Type: k, Fields: fields}
}

func (f *Fields) As(name string) *Fields {
	f.Bind = name
	return f
}

func NewSet(items ...Pattern) *Set {
	return &Set{Items: items}
}

func (s *Set) WithEllipsis() *Set {
	s.Ellipsis = true
	return s
}

func (l *Literal) String() string {
	return dl.Format(l.Value)
}

func (v *Var) String() string {
	return VarPrefix + v.Name
}

func (f *Fields) String() string {
	b := &strings.Builder{}
	b.WriteByte('{')
	sep := ""
	if f.Type != dl.NoKind {
		b.WriteString("type: " + f.Type.String())
		sep = ", "
	}
	if f.Bind != "" {
		b.WriteString(sep + "as: " + VarPrefix + f.Bind)
		sep = ", "
	}
	for _, field := range f.Fields {
		b.WriteString(sep + field.Name + ": " + field.Pattern.String())
		sep = ", "
	}
	b.WriteByte('}')
	return b.String()
}

func (s *Set) String() string {
	parts := make([]string, 0, len(s.Items)+1)
	for _, item := range s.Items {
		parts = append(parts, item.String())
	}
	if s.Ellipsis {
		parts = append(parts, Ellipsis)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

const (
	VarPrefix = "?"
	Ellipsis  = "..."
)

// Vars returns the names of the variables bound by p, in the order
// of their first occurrence.
func Vars(p Pattern) []string {
	var res []string
	seen := map[string]bool{}
	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		res = append(res, name)
	}
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch x := p.(type) {
		case *Var:
			add(x.Name)
		case *Fields:
			if x.Bind != "" {
				add(x.Bind)
			}
			for _, f := range x.Fields {
				walk(f.Pattern)
			}
		case *Set:
			for _, item := range x.Items {
				walk(item)
			}
		}
	}
	walk(p)
	return res
}
