package main

import (
	"github.com/signadot/dlmatch/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := corpusArgs(args)
	for i, file := range files {
		o, err := loadCorpus(cc, file)
		if err != nil {
			return err
		}
		if err := encode.EncodeAll(o.Axioms(), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}
