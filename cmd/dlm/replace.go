package main

import (
	"context"
	"fmt"
	"io"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/encode"
	"github.com/signadot/dlmatch/ontology"
	"github.com/signadot/dlmatch/rule"

	"github.com/scott-cotton/cli"
)

func replace(cfg *ReplaceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Replace.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Patch, cfg.Diff, cfg.Apply) > 1 {
		return fmt.Errorf("%w: must specify at most one of -patch -diff -apply", cli.ErrUsage)
	}
	rs, err := selectRules(cfg.Rules, cfg.Rule)
	if err != nil {
		return err
	}
	ctx, cancel := cfg.context()
	defer cancel()
	for _, file := range corpusArgs(args) {
		o, err := loadCorpus(cc, file)
		if err != nil {
			return err
		}
		res, reps, err := rewrite(ctx, o, rs, cfg.findOpts())
		if err != nil {
			return fmt.Errorf("error rewriting %s: %w", file, err)
		}
		switch {
		case cfg.Patch:
			err = writePatch(cc.Out, o, res)
		case cfg.Apply:
			err = writeCorpus(cc.Out, res, cfg.format() == encode.JSONFormat)
		default:
			opts := append(cfg.encOpts(cc.Out), encode.EncodeDiff(cfg.Diff))
			err = encode.EncodeReplacements(reps, cc.Out, opts...)
		}
		if err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}

// rewrite applies the rules with a rewrite in order, each to the
// result of the previous ones.
func rewrite(ctx context.Context, o *ontology.Ontology, rs []*rule.Rule, opts []dlmatch.FindOpt) (*ontology.Ontology, []dlmatch.Replacement, error) {
	var all []dlmatch.Replacement
	for _, r := range rs {
		if r.Rewrite == nil {
			continue
		}
		reps, err := r.Replace(ctx, o.Axioms(), opts...)
		if err != nil {
			return nil, nil, err
		}
		o = o.Substitute(reps)
		all = append(all, reps...)
	}
	return o, all, nil
}

// netReplacements pairs the axioms of from and to which differ. Both
// come from the same corpus, so axioms line up by position.
func netReplacements(from, to *ontology.Ontology) []dlmatch.Replacement {
	var res []dlmatch.Replacement
	fromAx, toAx := from.Axioms(), to.Axioms()
	for i := range fromAx {
		if fromAx[i] != toAx[i] {
			res = append(res, dlmatch.Replacement{Old: fromAx[i], New: toAx[i]})
		}
	}
	return res
}

func writePatch(w io.Writer, from, to *ontology.Ontology) error {
	d, err := from.JSONPatch(netReplacements(from, to))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func writeCorpus(w io.Writer, o *ontology.Ontology, asJSON bool) error {
	var (
		d   []byte
		err error
	)
	if asJSON {
		d, err = o.JSON()
	} else {
		d, err = o.YAML()
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
