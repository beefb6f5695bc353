package main

import (
	"fmt"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/encode"
	"github.com/signadot/dlmatch/eval"

	"github.com/scott-cotton/cli"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires a pattern argument", cli.ErrUsage)
	}
	p, err := getPattern(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	opts := cfg.findOpts()
	if cfg.Where != "" {
		g, err := eval.CompileGuard(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, dlmatch.Where(g))
	}
	ctx, cancel := cfg.context()
	defer cancel()
	for _, file := range corpusArgs(args[1:]) {
		o, err := loadCorpus(cc, file)
		if err != nil {
			return err
		}
		res, err := dlmatch.FindContext(ctx, o.Axioms(), p, opts...)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", file, err)
		}
		if err := encode.EncodeResults(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
	}
	return nil
}
