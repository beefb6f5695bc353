// Package ontology loads and rewrites corpus documents:
//
//	format: "1.0"
//	iri: http://example.org/onto
//	axioms:
//	- SubClassOf: {subClass: A, superClass: B}
package ontology

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/dlmatch/debug"
	"github.com/signadot/dlmatch/dl"
	"github.com/signadot/dlmatch/encode"
	"github.com/signadot/dlmatch/parse"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
)

const (
	FormatConstraint = "^1"

	formatKey = "format"
	iriKey    = "iri"
	axiomsKey = "axioms"
)

var ErrFormat = errors.New("unsupported corpus format")

type Ontology struct {
	Path   string
	Format string
	IRI    string

	axioms []dl.Node
}

func New(axioms ...dl.Node) *Ontology {
	return &Ontology{Format: "1.0", axioms: axioms}
}

// Load reads the corpus document at path.
func Load(path string) (*Ontology, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	o, err := Decode(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	o.Path = path
	return o, nil
}

// Decode decodes a corpus document from YAML or JSON.
func Decode(d []byte) (*Ontology, error) {
	v, err := parse.Decode(d)
	if err != nil {
		return nil, err
	}
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: corpus must be a map, got %T", parse.ErrShape, v)
	}
	o := &Ontology{}
	var axioms any
	for _, item := range m {
		switch item.Key {
		case formatKey:
			o.Format = fmt.Sprint(item.Value)
		case iriKey:
			o.IRI, _ = item.Value.(string)
		case axiomsKey:
			axioms = item.Value
		default:
			return nil, fmt.Errorf("%w: unknown corpus key %v", parse.ErrShape, item.Key)
		}
	}
	if err := checkFormat(o.Format); err != nil {
		return nil, err
	}
	if axioms != nil {
		o.axioms, err = parse.NodesFrom(axioms)
		if err != nil {
			return nil, fmt.Errorf("axioms: %w", err)
		}
	}
	for i, ax := range o.axioms {
		if !ax.Kind().IsAxiom() {
			return nil, fmt.Errorf("%w: axiom %d is a %s", parse.ErrShape, i, ax.Kind())
		}
	}
	if debug.Load() {
		debug.Logf("decoded corpus %q format %s with %d axioms\n", o.IRI, o.Format, len(o.axioms))
	}
	return o, nil
}

func checkFormat(f string) error {
	if f == "" {
		return fmt.Errorf("%w: missing %s", ErrFormat, formatKey)
	}
	v, err := semver.NewVersion(f)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrFormat, f, err)
	}
	c, err := semver.NewConstraint(FormatConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w %q: want %s", ErrFormat, f, FormatConstraint)
	}
	return nil
}

// Axioms returns the axioms in document order.
func (o *Ontology) Axioms() []dl.Node {
	return o.axioms
}

// Doc returns the document form of o.
func (o *Ontology) Doc() yaml.MapSlice {
	axioms := make([]any, len(o.axioms))
	for i, ax := range o.axioms {
		axioms[i] = encode.ToDoc(ax)
	}
	res := yaml.MapSlice{{Key: formatKey, Value: o.Format}}
	if o.IRI != "" {
		res = append(res, yaml.MapItem{Key: iriKey, Value: o.IRI})
	}
	return append(res, yaml.MapItem{Key: axiomsKey, Value: axioms})
}

func (o *Ontology) YAML() ([]byte, error) {
	return yaml.Marshal(o.Doc())
}

func (o *Ontology) JSON() ([]byte, error) {
	return yaml.MarshalWithOptions(o.Doc(), yaml.JSON())
}
