package ontology

import (
	"fmt"

	"github.com/signadot/dlmatch"
	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/encode"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// Substitute returns a copy of o in which each axiom structurally
// equal to the Old axiom of a replacement is replaced by its New
// axiom. The first matching replacement wins; o is unchanged.
func (o *Ontology) Substitute(reps []dlmatch.Replacement) *Ontology {
	res := *o
	res.axioms = make([]dl.Node, len(o.axioms))
	for i, ax := range o.axioms {
		res.axioms[i] = ax
		if j := find(reps, ax); j != -1 {
			res.axioms[i] = reps[j].New
		}
	}
	return &res
}

func find(reps []dlmatch.Replacement, ax dl.Node) int {
	for i := range reps {
		if dl.Equal(reps[i].Old, ax) {
			return i
		}
	}
	return -1
}

// JSONPatch renders Substitute as an RFC 6902 patch against the JSON
// form of o.
func (o *Ontology) JSONPatch(reps []dlmatch.Replacement) ([]byte, error) {
	ops := []any{}
	for i, ax := range o.axioms {
		j := find(reps, ax)
		if j == -1 {
			continue
		}
		ops = append(ops, yaml.MapSlice{
			{Key: "op", Value: "replace"},
			{Key: "path", Value: fmt.Sprintf("/%s/%d", axiomsKey, i)},
			{Key: "value", Value: encode.ToDoc(reps[j].New)},
		})
	}
	if debug.Load() {
		debug.Logf("json patch for %q has %d ops\n", o.Path, len(ops))
	}
	d, err := yaml.MarshalWithOptions(ops, yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("could not encode patch: %w", err)
	}
	return d, nil
}

// ApplyPatch applies an RFC 6902 patch to a JSON document.
func ApplyPatch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	res, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	return res, nil
}
