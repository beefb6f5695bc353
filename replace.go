package dlmatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"
)

var ErrUnbound = errors.New("unbound variable")

// Generator builds a replacement axiom from the bindings of a match.
type Generator func(Bindings) (dl.Node, error)

// Replacement pairs a matched axiom with the axiom generated for it.
type Replacement struct {
	Old      dl.Node
	New      dl.Node
	Bindings Bindings
}

// FindAndReplace runs gen on the bindings of every match of p in
// corpus. The corpus is left untouched: substituting the replacements
// is up to the caller.
func FindAndReplace(corpus []dl.Node, p pattern.Pattern, gen Generator) ([]Replacement, error) {
	return FindAndReplaceContext(context.Background(), corpus, p, gen)
}

func FindAndReplaceContext(ctx context.Context, corpus []dl.Node, p pattern.Pattern, gen Generator, opts ...FindOpt) ([]Replacement, error) {
	results, err := FindContext(ctx, corpus, p, opts...)
	if err != nil {
		return nil, err
	}
	res := make([]Replacement, 0, len(results))
	for _, r := range results {
		n, err := gen(r.Bindings.Clone())
		if err != nil {
			return nil, fmt.Errorf("error generating replacement for %s: %w", dl.Format(r.Axiom), err)
		}
		res = append(res, Replacement{Old: r.Axiom, New: n, Bindings: r.Bindings})
	}
	return res, nil
}

// Template returns a generator which instantiates p: variables are
// replaced by their bindings, literals by their values and field
// patterns of a concrete kind by new nodes built with dl.New. A
// variable bound to a set inside a set pattern is spliced in.
func Template(p pattern.Pattern) Generator {
	return func(b Bindings) (dl.Node, error) {
		v, err := instantiate(p, b)
		if err != nil {
			return nil, err
		}
		n, ok := v.(dl.Node)
		if !ok {
			return nil, fmt.Errorf("template %s gave %s, not a node", p.String(), dl.Format(v))
		}
		return n, nil
	}
}

func instantiate(p pattern.Pattern, b Bindings) (any, error) {
	switch x := p.(type) {
	case *pattern.Var:
		v, ok := b[x.Name]
		if !ok {
			return nil, fmt.Errorf("%w %s%s", ErrUnbound, pattern.VarPrefix, x.Name)
		}
		return v, nil
	case *pattern.Literal:
		return x.Value, nil
	case *pattern.Fields:
		if x.Type == dl.NoKind || x.Type.IsAbstract() {
			if x.Bind != "" {
				return instantiate(pattern.V(x.Bind), b)
			}
			return nil, fmt.Errorf("template %s needs a concrete type", x.String())
		}
		fields := make(map[string]any, len(x.Fields))
		for _, f := range x.Fields {
			v, err := instantiate(f.Pattern, b)
			if err != nil {
				return nil, err
			}
			fields[f.Name] = v
		}
		return dl.New(x.Type, fields)
	case *pattern.Set:
		if x.Ellipsis {
			return nil, fmt.Errorf("template %s: ellipsis has no instance", x.String())
		}
		res := make(dl.Set, 0, len(x.Items))
		for _, item := range x.Items {
			v, err := instantiate(item, b)
			if err != nil {
				return nil, err
			}
			switch vv := v.(type) {
			case dl.Node:
				res = append(res, vv)
			case dl.Set:
				res = append(res, vv...)
			default:
				return nil, fmt.Errorf("template %s: set item %s is not a node", x.String(), dl.Format(v))
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown pattern %T", p)
}
