package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/dlmatch/ontology"
	"github.com/signadot/dlmatch/parse"
	"github.com/signadot/dlmatch/pattern"
	"github.com/signadot/dlmatch/rule"

	"github.com/scott-cotton/cli"
)

// loadCorpus reads a corpus file, or standard input for "-".
func loadCorpus(cc *cli.Context, file string) (*ontology.Ontology, error) {
	if file != "-" {
		return ontology.Load(file)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return ontology.Decode(d)
}

func corpusArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func getPattern(s, f bool, cc *cli.Context, arg string) (pattern.Pattern, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	switch {
	case f && arg == "-":
		r = cc.In
	case f:
		file, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer file.Close()
		r = file
	default:
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading pattern: %w", err)
	}
	res, err := parse.Pattern(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding pattern: %w", err)
	}
	return res, nil
}

// selectRules loads a rules file and keeps only the named rule if name
// is not empty.
func selectRules(path, name string) ([]*rule.Rule, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: a rules file is required (-r)", cli.ErrUsage)
	}
	reg, err := rule.Load(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return reg.Rules(), nil
	}
	r := reg.Lookup(name)
	if r == nil {
		return nil, fmt.Errorf("%w: no rule %q in %s (have %s)", cli.ErrUsage, name, path, strings.Join(reg.Names(), ", "))
	}
	return []*rule.Rule{r}, nil
}
