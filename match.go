package dlmatch

import (
	"context"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"
)

// Match unifies target (a dl.Node, dl.Set or string) with p. On
// success it returns the bindings of the variables in p.
func Match(target any, p pattern.Pattern) (Bindings, bool) {
	m := &matcher{}
	res, ok, _ := m.match(target, p)
	return res, ok
}

// MatchContext is Match with ctx checked while backtracking over set
// patterns. The only error it returns is ctx.Err().
func MatchContext(ctx context.Context, target any, p pattern.Pattern) (Bindings, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m := &matcher{ctx: ctx}
	return m.match(target, p)
}

type matcher struct {
	ctx context.Context
}

func (m *matcher) match(target any, p pattern.Pattern) (Bindings, bool, error) {
	if debug.Match() {
		debug.Logf("match %s against %s\n", p.String(), dl.Format(target))
	}
	switch x := p.(type) {
	case *pattern.Set:
		return m.matchSet(target, x)
	case *pattern.Var:
		return Bindings{x.Name: target}, true, nil
	case *pattern.Literal:
		if !dl.Equal(target, x.Value) {
			return nil, false, nil
		}
		return Bindings{}, true, nil
	case *pattern.Fields:
		return m.matchFields(target, x)
	}
	return nil, false, nil
}

func (m *matcher) matchFields(target any, p *pattern.Fields) (Bindings, bool, error) {
	node, ok := target.(dl.Node)
	if !ok {
		return nil, false, nil
	}
	if p.Type != dl.NoKind && !node.Kind().Is(p.Type) {
		return nil, false, nil
	}
	res := Bindings{}
	if p.Bind != "" {
		res[p.Bind] = node
	}
	for _, f := range p.Fields {
		v, ok := node.Field(f.Name)
		if !ok || v == nil {
			if debug.Match() {
				debug.Logf("%s has no field %q\n", node.Kind(), f.Name)
			}
			return nil, false, nil
		}
		sub, ok, err := m.match(v, f.Pattern)
		if err != nil || !ok {
			return nil, false, err
		}
		res, ok = Merge(res, sub)
		if !ok {
			if debug.Match() {
				debug.Logf("conflicting bindings at field %q of %s\n", f.Name, node)
			}
			return nil, false, nil
		}
	}
	return res, true, nil
}

func (m *matcher) tick() error {
	if m.ctx == nil {
		return nil
	}
	return m.ctx.Err()
}
