package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/encode"
	"github.com/signadot/dlmatch/rule"

	"github.com/scott-cotton/cli"

	"github.com/fsnotify/fsnotify"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: watch requires corpus files", cli.ErrUsage)
	}
	if cfg.Rules == "" {
		return fmt.Errorf("%w: a rules file is required (-r)", cli.ErrUsage)
	}
	// -timeout bounds each run, not the watch.
	ctx, cancel := cfg.signalContext()
	defer cancel()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch directories: editors often replace files rather than
	// write them in place.
	watched := map[string]bool{}
	for _, file := range append([]string{cfg.Rules}, args...) {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("could not watch %s: %w", file, err)
		}
	}
	runWatch(ctx, cfg, cc, args)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if debug.Load() {
				debug.Logf("watch: %s %s\n", ev.Op, ev.Name)
			}
			runWatch(ctx, cfg, cc, args)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// runWatch reports errors without stopping the watch.
func runWatch(ctx context.Context, cfg *WatchConfig, cc *cli.Context, files []string) {
	if err := watchOnce(ctx, cfg, cc, files); err != nil {
		fmt.Fprintf(cc.Out, "error: %v\n", err)
	}
}

func watchOnce(ctx context.Context, cfg *WatchConfig, cc *cli.Context, files []string) error {
	rs, err := selectRules(cfg.Rules, cfg.Rule)
	if err != nil {
		return err
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range files {
		o, err := loadCorpus(cc, file)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "# %s\n", file)
		for _, r := range rs {
			if err := runRule(ctx, cfg, cc.Out, r, o.Axioms(), opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func runRule(ctx context.Context, cfg *WatchConfig, w io.Writer, r *rule.Rule, corpus []dl.Node, opts []encode.EncodeOption) error {
	fmt.Fprintf(w, "## %s\n", r.Name)
	if r.Rewrite == nil {
		res, err := r.Find(ctx, corpus, cfg.findOpts()...)
		if err != nil {
			return err
		}
		return encode.EncodeResults(res, w, opts...)
	}
	reps, err := r.Replace(ctx, corpus, cfg.findOpts()...)
	if err != nil {
		return err
	}
	return encode.EncodeReplacements(reps, w, append(opts, encode.EncodeDiff(cfg.Diff))...)
}
