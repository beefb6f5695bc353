package eval

import (
	"strings"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
)

var bindingFuncs = map[string]bool{
	"kind": true,
	"iri":  true,
	"size": true,
}

// varRefs rewrites variable arguments of the binding functions, as in
// kind(y), to references "?y" so that the functions see the bound
// value rather than its rendered text.
type varRefs struct{}

func (varRefs) Visit(node *ast.Node) {
	call, ok := (*node).(*ast.CallNode)
	if !ok {
		return
	}
	callee, ok := call.Callee.(*ast.IdentifierNode)
	if !ok || !bindingFuncs[callee.Value] {
		return
	}
	for i, arg := range call.Arguments {
		id, ok := arg.(*ast.IdentifierNode)
		if !ok {
			continue
		}
		call.Arguments[i] = &ast.StringNode{Value: pattern.VarPrefix + id.Value}
	}
}

// lookup resolves an argument of a binding function. A reference
// yields the bound value (nil if unbound); any other string is
// returned as is.
func lookup(b dlmatch.Bindings, arg string) any {
	if name, ok := strings.CutPrefix(arg, pattern.VarPrefix); ok {
		return b[name]
	}
	return arg
}

// kind(v) is the kind name of the value of v, or "" if it is not a
// node.
func kindFunc(b dlmatch.Bindings) func(string) string {
	return func(arg string) string {
		if n, ok := lookup(b, arg).(dl.Node); ok {
			return n.Kind().String()
		}
		return ""
	}
}

// iri(v) is the IRI of an entity, the string itself for a scalar and
// "" for anything else.
func iriFunc(b dlmatch.Bindings) func(string) string {
	return func(arg string) string {
		switch x := lookup(b, arg).(type) {
		case *dl.Entity:
			return x.IRI
		case string:
			return x
		}
		return ""
	}
}

// size(v) is the number of members of a set, or of the set valued field
// of a node such as ObjectIntersectionOf. It is 0 otherwise.
func sizeFunc(b dlmatch.Bindings) func(string) int {
	return func(arg string) int {
		switch x := lookup(b, arg).(type) {
		case dl.Set:
			return len(x)
		case dl.Node:
			k := x.Kind()
			for _, name := range dl.FieldNames(k) {
				if !dl.IsSetField(k, name) {
					continue
				}
				v, _ := x.Field(name)
				s, _ := v.(dl.Set)
				return len(s)
			}
		}
		return 0
	}
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("local", func(params ...any) (any, error) {
			s, _ := params[0].(string)
			return localName(s), nil
		},
			new(func(string) string)),
	}
}

// localName is the part of an IRI after its last '#' or '/'.
func localName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
