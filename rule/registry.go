package rule

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/parse"
	"github.com/signadot/dlmatch/pattern"

	"github.com/goccy/go-yaml"
)

var ErrRuleExists = errors.New("rule exists")

type Registry struct {
	mu    sync.RWMutex
	d     map[string]*Rule
	names []string
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]*Rule{}}
}

func (r *Registry) Add(rule *Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, present := r.d[rule.Name]; present {
		return fmt.Errorf("%s: %w", rule.Name, ErrRuleExists)
	}
	r.d[rule.Name] = rule
	r.names = append(r.names, rule.Name)
	return nil
}

func (r *Registry) Lookup(name string) *Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.d[name]
}

// Names returns rule names in the order they were added.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

func (r *Registry) Rules() []*Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*Rule, len(r.names))
	for i, name := range r.names {
		res[i] = r.d[name]
	}
	return res
}

func Load(path string) (*Registry, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	reg, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return reg, nil
}

// Decode reads a sequence of rules into a new registry.
func Decode(d []byte) (*Registry, error) {
	v, err := parse.Decode(d)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sequence of rules, got %T", parse.ErrShape, v)
	}
	reg := NewRegistry()
	for i, item := range items {
		rule, err := ruleFrom(item)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if err := reg.Add(rule); err != nil {
			return nil, err
		}
		if debug.Load() {
			debug.Logf("loaded rule %s matching %s\n", rule.Name, rule.Match)
		}
	}
	return reg, nil
}

func ruleFrom(v any) (*Rule, error) {
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: expected a rule map, got %T", parse.ErrShape, v)
	}
	var (
		name, where    string
		match, replace pattern.Pattern
		err            error
	)
	for _, item := range m {
		switch item.Key {
		case "name":
			name = fmt.Sprint(item.Value)
		case "where":
			where, ok = item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: where must be a string, got %T", parse.ErrShape, item.Value)
			}
		case "match":
			match, err = parse.PatternFrom(item.Value)
			if err != nil {
				return nil, fmt.Errorf("match: %w", err)
			}
		case "replace":
			replace, err = parse.PatternFrom(item.Value)
			if err != nil {
				return nil, fmt.Errorf("replace: %w", err)
			}
		default:
			return nil, fmt.Errorf("%w: unknown rule key %v", parse.ErrShape, item.Key)
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: rule has no name", parse.ErrShape)
	}
	return New(name, match, where, replace)
}
