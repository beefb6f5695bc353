// Package parse decodes axioms and patterns from YAML or JSON
// documents.
//
// A node is a bare string, naming a class (or a property or individual
// where the field calls for one), or a map with a single kind key:
//
//	SubClassOf:
//	  subClass: A
//	  superClass:
//	    ObjectSomeValuesFrom: {property: r, filler: B}
//
// Patterns use the same shapes, plus '?x' variables, maps with a
// "type" and/or "as" key next to field keys, sequences for set
// patterns (ending in '...' for an ellipsis) and {literal: node}.
package parse

import (
	"fmt"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"

	"github.com/goccy/go-yaml"
)

const (
	typeKey    = "type"
	asKey      = "as"
	literalKey = "literal"
)

// Decode decodes a YAML or JSON document, keeping the order of map
// keys: maps decode to yaml.MapSlice.
func Decode(d []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

// Node decodes a single node.
func Node(d []byte) (dl.Node, error) {
	v, err := Decode(d)
	if err != nil {
		return nil, err
	}
	return NodeFrom(v)
}

// Nodes decodes a sequence of nodes.
func Nodes(d []byte) ([]dl.Node, error) {
	v, err := Decode(d)
	if err != nil {
		return nil, err
	}
	return NodesFrom(v)
}

// Pattern decodes a pattern.
func Pattern(d []byte) (pattern.Pattern, error) {
	v, err := Decode(d)
	if err != nil {
		return nil, err
	}
	return PatternFrom(v)
}

// NodeFrom converts a decoded document to a node.
func NodeFrom(v any) (dl.Node, error) {
	return nodeFor(v, dl.NoKind)
}

func NodesFrom(v any) ([]dl.Node, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sequence of nodes, got %T", ErrShape, v)
	}
	res := make([]dl.Node, len(items))
	for i, item := range items {
		n, err := NodeFrom(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res[i] = n
	}
	return res, nil
}

// PatternFrom converts a decoded document to a pattern.
func PatternFrom(v any) (pattern.Pattern, error) {
	p, err := patternFor(v, dl.NoKind)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("parsed pattern %s\n", p.String())
	}
	return p, nil
}

// entity names a bare string according to the kind expected where it
// appears.
func entity(s string, want dl.Kind) dl.Node {
	switch want {
	case dl.ObjectPropertyKind:
		return dl.NewObjectProperty(s)
	case dl.NamedIndividualKind:
		return dl.NewIndividual(s)
	}
	return dl.NewClass(s)
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case nil, yaml.MapSlice, []any, map[string]any:
		return "", false
	default:
		return fmt.Sprint(x), true
	}
}

func singleKind(m yaml.MapSlice) (dl.Kind, any, bool) {
	if len(m) != 1 {
		return dl.NoKind, nil, false
	}
	key, ok := m[0].Key.(string)
	if !ok {
		return dl.NoKind, nil, false
	}
	k, err := dl.ParseKind(key)
	if err != nil || k.IsAbstract() {
		return dl.NoKind, nil, false
	}
	return k, m[0].Value, true
}

func nodeFor(v any, want dl.Kind) (dl.Node, error) {
	if s, ok := scalar(v); ok {
		return entity(s, want), nil
	}
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: expected a node, got %T", ErrShape, v)
	}
	k, body, ok := singleKind(m)
	if !ok {
		return nil, fmt.Errorf("%w: a node is a map with a single kind key, got %v", ErrShape, keys(m))
	}
	if k.IsEntity() {
		if s, ok := scalar(body); ok {
			return dl.New(k, map[string]any{"iri": s})
		}
	}
	bm, ok := body.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a map of fields, got %T", ErrShape, k, body)
	}
	fields := make(map[string]any, len(bm))
	for _, item := range bm {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s has a non string field name %v", ErrShape, k, item.Key)
		}
		fv, err := fieldValue(k, name, item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", k, name, err)
		}
		fields[name] = fv
	}
	return dl.New(k, fields)
}

func fieldValue(k dl.Kind, name string, v any) (any, error) {
	switch {
	case dl.IsScalarField(k, name):
		s, ok := scalar(v)
		if !ok {
			return nil, fmt.Errorf("%w: expected a string, got %T", ErrShape, v)
		}
		return s, nil
	case dl.IsSetField(k, name):
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected a sequence, got %T", ErrShape, v)
		}
		res := make(dl.Set, len(items))
		for i, item := range items {
			n, err := nodeFor(item, dl.FieldKind(k, name))
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			res[i] = n
		}
		return res, nil
	}
	return nodeFor(v, dl.FieldKind(k, name))
}

func patternFor(v any, want dl.Kind) (pattern.Pattern, error) {
	if s, ok := scalar(v); ok {
		return scalarPattern(s, want)
	}
	switch x := v.(type) {
	case []any:
		return setPattern(x, want)
	case yaml.MapSlice:
		if k, body, ok := singleKind(x); ok {
			return kindPattern(k, body)
		}
		return fieldsPattern(x, want)
	}
	return nil, fmt.Errorf("%w: expected a pattern, got %T", ErrShape, v)
}

func scalarPattern(s string, want dl.Kind) (pattern.Pattern, error) {
	if name, ok := varName(s); ok {
		return pattern.V(name), nil
	}
	if s == pattern.Ellipsis {
		return nil, ErrEllipsis
	}
	return pattern.Lit(entity(s, want)), nil
}

func varName(s string) (string, bool) {
	if len(s) > len(pattern.VarPrefix) && s[:len(pattern.VarPrefix)] == pattern.VarPrefix {
		return s[len(pattern.VarPrefix):], true
	}
	return "", false
}

func setPattern(items []any, want dl.Kind) (pattern.Pattern, error) {
	res := pattern.NewSet()
	for i, item := range items {
		if s, ok := item.(string); ok && s == pattern.Ellipsis {
			if i != len(items)-1 {
				return nil, fmt.Errorf("%w: item %d of %d", ErrEllipsis, i, len(items))
			}
			res.Ellipsis = true
			continue
		}
		p, err := patternFor(item, want)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res.Items = append(res.Items, p)
	}
	return res, nil
}

// kindPattern handles the node shorthand {Kind: {field: pattern}}.
func kindPattern(k dl.Kind, body any) (pattern.Pattern, error) {
	if k.IsEntity() {
		if s, ok := scalar(body); ok {
			if name, ok := varName(s); ok {
				return pattern.Of(k, pattern.F("iri", pattern.V(name))), nil
			}
			return pattern.Lit(&dl.Entity{K: k, IRI: s}), nil
		}
	}
	bm, ok := body.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects a map of field patterns, got %T", ErrShape, k, body)
	}
	res := pattern.Of(k)
	if err := addFields(res, bm); err != nil {
		return nil, err
	}
	return res, nil
}

func fieldsPattern(m yaml.MapSlice, want dl.Kind) (pattern.Pattern, error) {
	res := pattern.Of(dl.NoKind)
	rest := make(yaml.MapSlice, 0, len(m))
	for _, item := range m {
		switch item.Key {
		case literalKey:
			if len(m) != 1 {
				return nil, fmt.Errorf("%w: literal must stand alone, got %v", ErrShape, keys(m))
			}
			n, err := nodeFor(item.Value, want)
			if err != nil {
				return nil, fmt.Errorf("literal: %w", err)
			}
			return pattern.Lit(n), nil
		case typeKey:
			s, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: type must be a kind name, got %T", ErrShape, item.Value)
			}
			k, err := dl.ParseKind(s)
			if err != nil {
				return nil, err
			}
			res.Type = k
		case asKey:
			s, _ := item.Value.(string)
			name, ok := varName(s)
			if !ok {
				return nil, fmt.Errorf("%w: as must be a variable, got %v", ErrShape, item.Value)
			}
			res.Bind = name
		default:
			rest = append(rest, item)
		}
	}
	if err := addFields(res, rest); err != nil {
		return nil, err
	}
	return res, nil
}

func addFields(res *pattern.Fields, m yaml.MapSlice) error {
	for _, item := range m {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("%w: non string field name %v", ErrShape, item.Key)
		}
		var (
			p   pattern.Pattern
			err error
		)
		if dl.IsScalarField(res.Type, name) {
			p, err = iriPattern(item.Value)
		} else {
			p, err = patternFor(item.Value, dl.FieldKind(res.Type, name))
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		res.Fields = append(res.Fields, pattern.F(name, p))
	}
	return nil
}

func iriPattern(v any) (pattern.Pattern, error) {
	s, ok := scalar(v)
	if !ok {
		return nil, fmt.Errorf("%w: expected a string, got %T", ErrShape, v)
	}
	if name, ok := varName(s); ok {
		return pattern.V(name), nil
	}
	return pattern.Lit(s), nil
}

func keys(m yaml.MapSlice) []any {
	res := make([]any, len(m))
	for i := range m {
		res[i] = m[i].Key
	}
	return res
}
