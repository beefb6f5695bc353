package dl

import "fmt"

// New builds a node of kind k from its fields. Every field of the
// kind must be present with the right shape, and node valued fields
// must hold nodes of the expected kind. A Set field also accepts a
// []Node.
func New(k Kind, fields map[string]any) (Node, error) {
	specs, ok := fieldSpecs[k]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownKind, k)
	}
	for name := range fields {
		if !hasField(specs, name) {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrBadField, k, name)
		}
	}
	vals := make([]any, len(specs))
	for i, spec := range specs {
		v, err := checkField(k, spec, fields[spec.name])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	switch k {
	case ClassKind, ObjectPropertyKind, NamedIndividualKind:
		return &Entity{K: k, IRI: vals[0].(string)}, nil
	case ObjectIntersectionOfKind, ObjectUnionOfKind:
		return &Junction{K: k, Operands: vals[0].(Set)}, nil
	case ObjectComplementOfKind:
		return &Complement{Operand: vals[0].(Node)}, nil
	case ObjectSomeValuesFromKind, ObjectAllValuesFromKind:
		return &Restriction{K: k, Property: vals[0].(Node), Filler: vals[1].(Node)}, nil
	case ObjectHasValueKind:
		return &HasValue{Property: vals[0].(Node), Individual: vals[1].(Node)}, nil
	case SubClassOfKind:
		return &SubClassOf{SubClass: vals[0].(Node), SuperClass: vals[1].(Node)}, nil
	case EquivalentClassesKind, DisjointClassesKind:
		return &ClassSet{K: k, Classes: vals[0].(Set)}, nil
	case SubObjectPropertyOfKind:
		return &SubPropertyOf{SubProperty: vals[0].(Node), SuperProperty: vals[1].(Node)}, nil
	case ObjectPropertyDomainKind, ObjectPropertyRangeKind:
		return &PropertyClass{K: k, Property: vals[0].(Node), Class: vals[1].(Node)}, nil
	case ClassAssertionKind:
		return &ClassAssertion{Class: vals[0].(Node), Individual: vals[1].(Node)}, nil
	case ObjectPropertyAssertionKind:
		return &PropertyAssertion{Property: vals[0].(Node), Subject: vals[1].(Node), Object: vals[2].(Node)}, nil
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownKind, k)
}

func hasField(specs []fieldSpec, name string) bool {
	for i := range specs {
		if specs[i].name == name {
			return true
		}
	}
	return false
}

func checkField(k Kind, spec fieldSpec, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %s requires field %q", ErrBadField, k, spec.name)
	}
	switch spec.shape {
	case scalarShape:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s must be a string, got %T", ErrBadField, k, spec.name, v)
		}
		return s, nil
	case nodeShape:
		n, ok := v.(Node)
		if !ok || isNil(n) {
			return nil, fmt.Errorf("%w: %s.%s must be a node, got %T", ErrBadField, k, spec.name, v)
		}
		if !n.Kind().Is(spec.kind) {
			return nil, fmt.Errorf("%w: %s.%s must be a %s, got %s", ErrBadField, k, spec.name, spec.kind, n.Kind())
		}
		return n, nil
	case setShape:
		var s Set
		switch x := v.(type) {
		case Set:
			s = x
		case []Node:
			s = Set(x)
		default:
			return nil, fmt.Errorf("%w: %s.%s must be a set, got %T", ErrBadField, k, spec.name, v)
		}
		for _, n := range s {
			if isNil(n) || !n.Kind().Is(spec.kind) {
				return nil, fmt.Errorf("%w: %s.%s members must be %s", ErrBadField, k, spec.name, spec.kind)
			}
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrBadField, k, spec.name)
}

// isNil reports whether n is nil or a nil pointer of one of the node
// types.
func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Entity:
		return x == nil
	case *Junction:
		return x == nil
	case *Complement:
		return x == nil
	case *Restriction:
		return x == nil
	case *HasValue:
		return x == nil
	case *SubClassOf:
		return x == nil
	case *ClassSet:
		return x == nil
	case *SubPropertyOf:
		return x == nil
	case *PropertyClass:
		return x == nil
	case *ClassAssertion:
		return x == nil
	case *PropertyAssertion:
		return x == nil
	}
	return false
}
