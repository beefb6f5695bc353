package encode

import (
	"fmt"

	"github.com/signadot/dlmatch/dl"

	"github.com/goccy/go-yaml"
)

// ToDoc converts a node, set or string to the document form read by
// package parse. Entities whose kind is implied by where they appear
// become bare strings.
func ToDoc(v any) any {
	return toDoc(v, dl.ClassExpressionKind)
}

func toDoc(v any, want dl.Kind) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return x
	case *dl.Entity:
		if x.K == implied(want) {
			return x.IRI
		}
		return yaml.MapSlice{{Key: x.K.String(), Value: x.IRI}}
	case dl.Node:
		k := x.Kind()
		names := dl.FieldNames(k)
		body := make(yaml.MapSlice, 0, len(names))
		for _, name := range names {
			fv, _ := x.Field(name)
			body = append(body, yaml.MapItem{Key: name, Value: toDoc(fv, dl.FieldKind(k, name))})
		}
		return yaml.MapSlice{{Key: k.String(), Value: body}}
	case dl.Set:
		res := make([]any, len(x))
		for i, n := range x {
			res[i] = toDoc(n, want)
		}
		return res
	}
	return fmt.Sprint(v)
}

func implied(want dl.Kind) dl.Kind {
	switch want {
	case dl.ObjectPropertyKind, dl.NamedIndividualKind:
		return want
	}
	return dl.ClassKind
}
