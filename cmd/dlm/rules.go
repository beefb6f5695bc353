package main

import (
	"fmt"

	"github.com/signadot/dlmatch/rule"

	"github.com/scott-cotton/cli"
)

func rules(cfg *RulesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rules.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: rules requires 1 argument, a rules file", cli.ErrUsage)
	}
	reg, err := rule.Load(args[0])
	if err != nil {
		return err
	}
	for _, r := range reg.Rules() {
		fmt.Fprintf(cc.Out, "%s\n", r.Name)
		fmt.Fprintf(cc.Out, "\tmatch:   %s\n", r.Match)
		if r.Where != "" {
			fmt.Fprintf(cc.Out, "\twhere:   %s\n", r.Where)
		}
		if r.Rewrite != nil {
			fmt.Fprintf(cc.Out, "\treplace: %s\n", r.Rewrite)
		}
	}
	return nil
}
