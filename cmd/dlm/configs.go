package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	J        bool `cli:"name=j aliases=json desc='output in json'"`
	Y        bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	Gops     bool `cli:"name=gops desc='start a gops agent'"`
	Parallel int  `cli:"name=parallel desc='match up to n axioms concurrently'"`

	Timeout   time.Duration
	OutFormat *encode.Format

	Main *cli.Command
}

func (cfg *MainConfig) timeoutOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Timeout = d
	return d, nil
}

func (cfg *MainConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := encode.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// context is canceled on interrupt and after -timeout, if given.
func (cfg *MainConfig) context() (context.Context, context.CancelFunc) {
	ctx, stop := cfg.signalContext()
	if cfg.Timeout <= 0 {
		return ctx, stop
	}
	tctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	return tctx, func() {
		cancel()
		stop()
	}
}

func (cfg *MainConfig) findOpts() []dlmatch.FindOpt {
	if cfg.Parallel <= 1 {
		return nil
	}
	return []dlmatch.FindOpt{dlmatch.Parallel(cfg.Parallel)}
}

func (cfg *MainConfig) format() encode.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return encode.JSONFormat
	case cfg.Y:
		return encode.YAMLFormat
	}
	return encode.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet || cfg.format() != encode.TextFormat {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FindConfig struct {
	*cli.Command
	*MainConfig

	String bool   `cli:"name=s desc='consider pattern a string argument'"`
	File   bool   `cli:"name=f desc='consider pattern a file path'"`
	Where  string `cli:"name=where desc='guard expression over the bindings'"`
}

type ReplaceConfig struct {
	*MainConfig

	Rules string `cli:"name=r aliases=rules desc='rules file'"`
	Rule  string `cli:"name=rule desc='only apply the named rule'"`
	Patch bool   `cli:"name=patch desc='output a json patch against the corpus'"`
	Diff  bool   `cli:"name=diff desc='show replacements as inline diffs'"`
	Apply bool   `cli:"name=apply desc='output the rewritten corpus'"`

	Replace *cli.Command
}

type RulesConfig struct {
	*MainConfig

	Rules *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type WatchConfig struct {
	*MainConfig

	Rules string `cli:"name=r aliases=rules desc='rules file'"`
	Rule  string `cli:"name=rule desc='only apply the named rule'"`
	Diff  bool   `cli:"name=diff desc='show replacements as inline diffs'"`

	Watch *cli.Command
}
