package encode

import (
	"fmt"
	"io"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/libdiff"
	"github.com/signadot/dlmatch/pattern"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format Format
	colors *Colors
	diff   bool
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) painter() dl.Painter {
	if es.colors == nil {
		return nil
	}
	return es.colors.Paint
}

func (es *EncState) text(v any) string {
	return dl.FormatWith(v, es.painter())
}

func (es *EncState) colorWith(f func(*Colors) func(string, ...any) string, s string) string {
	if es.colors == nil {
		return s
	}
	return f(es.colors)(s)
}

// Encode writes a node, set or string followed by a newline.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format == TextFormat {
		return writeString(w, es.text(v)+"\n")
	}
	return marshal(w, ToDoc(v), es)
}

// EncodeAll writes a sequence of nodes, one per line in text format
// and as a single sequence otherwise.
func EncodeAll(ns []dl.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format != TextFormat {
		docs := make([]any, len(ns))
		for i, n := range ns {
			docs[i] = ToDoc(n)
		}
		return marshal(w, docs, es)
	}
	for _, n := range ns {
		if err := writeString(w, es.text(n)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// EncodeResults writes match results: each axiom followed by its
// bindings.
func EncodeResults(rs []dlmatch.Result, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format != TextFormat {
		docs := make([]any, len(rs))
		for i := range rs {
			docs[i] = yaml.MapSlice{
				{Key: "axiom", Value: ToDoc(rs[i].Axiom)},
				{Key: "bindings", Value: bindingsDoc(rs[i].Bindings)},
			}
		}
		return marshal(w, docs, es)
	}
	for i := range rs {
		r := &rs[i]
		if err := writeString(w, es.text(r.Axiom)+"\n"); err != nil {
			return err
		}
		for _, name := range r.Bindings.Names() {
			v := es.colorWith(varColor, pattern.VarPrefix+name)
			if err := writeString(w, "  "+v+" = "+es.text(r.Bindings[name])+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// EncodeReplacements writes replacements as removed and added lines,
// or as an inline diff with EncodeDiff.
func EncodeReplacements(reps []dlmatch.Replacement, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	if es.format != TextFormat {
		docs := make([]any, len(reps))
		for i := range reps {
			docs[i] = yaml.MapSlice{
				{Key: "old", Value: ToDoc(reps[i].Old)},
				{Key: "new", Value: ToDoc(reps[i].New)},
			}
		}
		return marshal(w, docs, es)
	}
	for i := range reps {
		rep := &reps[i]
		var out string
		if es.diff {
			m := libdiff.DefaultMarkers
			if es.colors != nil {
				m = libdiff.Markers{
					Insert: func(s string) string { return es.colors.Added(s) },
					Delete: func(s string) string { return es.colors.Removed(s) },
				}
			}
			d, _ := libdiff.DiffNodes(rep.Old, rep.New, m)
			out = "~ " + d + "\n"
		} else {
			out = es.colorWith(removedColor, "- "+dl.Format(rep.Old)) + "\n" +
				es.colorWith(addedColor, "+ "+dl.Format(rep.New)) + "\n"
		}
		if err := writeString(w, out); err != nil {
			return err
		}
	}
	return nil
}

func varColor(c *Colors) func(string, ...any) string     { return c.Var }
func addedColor(c *Colors) func(string, ...any) string   { return c.Added }
func removedColor(c *Colors) func(string, ...any) string { return c.Removed }

func bindingsDoc(b dlmatch.Bindings) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(b))
	for _, name := range b.Names() {
		res = append(res, yaml.MapItem{Key: name, Value: ToDoc(b[name])})
	}
	return res
}

func marshal(w io.Writer, doc any, es *EncState) error {
	var yOpts []yaml.EncodeOption
	if es.format == JSONFormat {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(doc, yOpts...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
