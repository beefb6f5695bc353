package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "timeout",
			Description: "give up matching after this long",
			Type:        cli.NamedFuncOpt(cfg.timeoutOpt, "(duration)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dlm").
		WithSynopsis("dlm [opts] command [opts]").
		WithDescription("dlm finds and rewrites axioms by their shape.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dlmMain(cfg, cc, args)
		}).
		WithSubs(
			FindCommand(cfg),
			ReplaceCommand(cfg),
			RulesCommand(cfg),
			ViewCommand(cfg),
			WatchCommand(cfg))
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "find").
		WithAliases("f", "m", "match").
		WithSynopsis("find [opts] <pattern> [corpus files]").
		WithDescription("find the axioms matching a pattern and show their bindings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func ReplaceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplaceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Replace, "replace").
		WithAliases("r", "re").
		WithSynopsis("replace -r rules.yaml [-rule name] [-patch|-diff|-apply] [corpus files]").
		WithDescription("rewrite matching axioms with the rules of a rules file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return replace(cfg, cc, args)
		})
}

func RulesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RulesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rules, "rules").
		WithSynopsis("rules <rules file>").
		WithDescription("list the rules in a rules file").
		WithRun(func(cc *cli.Context, args []string) error {
			return rules(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [corpus files]").
		WithDescription("view corpus axioms in functional syntax").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func WatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Watch, "watch").
		WithAliases("w").
		WithSynopsis("watch -r rules.yaml [-rule name] <corpus files>").
		WithDescription("re-run rules whenever the rules or corpus files change").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return watch(cfg, cc, args)
		})
}
