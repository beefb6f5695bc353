package dlmatch

import (
	"context"
	"fmt"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/pattern"

	"golang.org/x/sync/errgroup"
)

// Result is one successful match of a pattern against a corpus axiom.
type Result struct {
	Bindings Bindings
	Axiom    dl.Node
}

// Guard filters results by their bindings.
type Guard func(Bindings) (bool, error)

type FindConfig struct {
	Guards   []Guard
	Parallel int
}

type FindOpt func(*FindConfig)

// Where keeps only the results for which g holds.
func Where(g Guard) FindOpt {
	return func(c *FindConfig) { c.Guards = append(c.Guards, g) }
}

// Parallel matches up to n corpus axioms at a time. Results are still
// in corpus order.
func Parallel(n int) FindOpt {
	return func(c *FindConfig) { c.Parallel = n }
}

// Find matches p against every axiom of corpus, in order.
func Find(corpus []dl.Node, p pattern.Pattern) []Result {
	res, _ := FindContext(context.Background(), corpus, p)
	return res
}

func FindContext(ctx context.Context, corpus []dl.Node, p pattern.Pattern, opts ...FindOpt) ([]Result, error) {
	cfg := &FindConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if debug.Find() {
		debug.Logf("find %s in %d axioms (parallel %d)\n", p.String(), len(corpus), cfg.Parallel)
	}
	if cfg.Parallel > 1 {
		return cfg.findParallel(ctx, corpus, p)
	}
	var res []Result
	for _, ax := range corpus {
		r, err := cfg.try(ctx, ax, p)
		if err != nil {
			return nil, err
		}
		if r != nil {
			res = append(res, *r)
		}
	}
	return res, nil
}

func (cfg *FindConfig) findParallel(ctx context.Context, corpus []dl.Node, p pattern.Pattern) ([]Result, error) {
	slots := make([]*Result, len(corpus))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, ax := range corpus {
		g.Go(func() error {
			r, err := cfg.try(gctx, ax, p)
			slots[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var res []Result
	for _, r := range slots {
		if r != nil {
			res = append(res, *r)
		}
	}
	return res, nil
}

func (cfg *FindConfig) try(ctx context.Context, ax dl.Node, p pattern.Pattern) (*Result, error) {
	b, ok, err := MatchContext(ctx, ax, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	for _, g := range cfg.Guards {
		keep, err := g(b)
		if err != nil {
			return nil, fmt.Errorf("guard on %s: %w", dl.Format(ax), err)
		}
		if !keep {
			return nil, nil
		}
	}
	if debug.Find() {
		debug.Logf("matched %s with %v\n", ax, b)
	}
	return &Result{Bindings: b, Axiom: ax}, nil
}
