// Package rule holds named match and rewrite rules, read from YAML
// documents of the form
//
//	- name: split-conjunction
//	  match:
//	    SubClassOf:
//	      subClass: '?x'
//	      superClass:
//	        ObjectIntersectionOf: {operands: ['?y', '?z']}
//	  where: 'x != y'
//	  replace:
//	    SubClassOf: {subClass: '?x', superClass: '?y'}
package rule

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/eval"
	"github.com/signadot/dlmatch/pattern"
)

var (
	ErrNoReplace = errors.New("rule has no replacement")
	ErrFreeVar   = errors.New("replacement variable not bound by match")
)

type Rule struct {
	Name    string
	Match   pattern.Pattern
	Where   string
	Rewrite pattern.Pattern

	guard dlmatch.Guard
}

// New checks and compiles a rule. replace may be nil for find only
// rules.
func New(name string, match pattern.Pattern, where string, replace pattern.Pattern) (*Rule, error) {
	if match == nil {
		return nil, fmt.Errorf("rule %s: no match pattern", name)
	}
	r := &Rule{Name: name, Match: match, Where: where, Rewrite: replace}
	if where != "" {
		g, err := eval.CompileGuard(where)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
		r.guard = g
	}
	if replace == nil {
		return r, nil
	}
	bound := map[string]bool{}
	for _, v := range pattern.Vars(match) {
		bound[v] = true
	}
	for _, v := range pattern.Vars(replace) {
		if !bound[v] {
			return nil, fmt.Errorf("rule %s: %w: %s%s", name, ErrFreeVar, pattern.VarPrefix, v)
		}
	}
	return r, nil
}

func (r *Rule) findOpts(opts []dlmatch.FindOpt) []dlmatch.FindOpt {
	if r.guard == nil {
		return opts
	}
	res := make([]dlmatch.FindOpt, 0, len(opts)+1)
	res = append(res, dlmatch.Where(r.guard))
	return append(res, opts...)
}

// Find returns the axioms of corpus matching the rule and satisfying
// its guard.
func (r *Rule) Find(ctx context.Context, corpus []dl.Node, opts ...dlmatch.FindOpt) ([]dlmatch.Result, error) {
	res, err := dlmatch.FindContext(ctx, corpus, r.Match, r.findOpts(opts)...)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", r.Name, err)
	}
	return res, nil
}

// Replace rewrites each axiom found by Find with the instantiated
// replacement pattern.
func (r *Rule) Replace(ctx context.Context, corpus []dl.Node, opts ...dlmatch.FindOpt) ([]dlmatch.Replacement, error) {
	if r.Rewrite == nil {
		return nil, fmt.Errorf("rule %s: %w", r.Name, ErrNoReplace)
	}
	res, err := dlmatch.FindAndReplaceContext(ctx, corpus, r.Match, dlmatch.Template(r.Rewrite), r.findOpts(opts)...)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", r.Name, err)
	}
	return res, nil
}
