package dlmatch

import (
	"maps"
	"slices"
	"strings"

	"github.com/signadot/dlmatch/dl"
)

// Bindings maps variable names to the target values they matched: a
// dl.Node, a dl.Set or a string.
type Bindings map[string]any

// Merge returns the union of a and b. A name bound in both coalesces
// when the two values are dl.Equal; otherwise the bindings conflict
// and Merge returns false. Neither input is modified.
func Merge(a, b Bindings) (Bindings, bool) {
	res := make(Bindings, len(a)+len(b))
	maps.Copy(res, a)
	for k, v := range b {
		old, present := res[k]
		if !present {
			res[k] = v
			continue
		}
		if !dl.Equal(old, v) {
			return nil, false
		}
	}
	return res, true
}

func (b Bindings) Clone() Bindings {
	return maps.Clone(b)
}

// Names returns the bound names in sorted order.
func (b Bindings) Names() []string {
	return slices.Sorted(maps.Keys(b))
}

// Equal reports whether b and o bind the same names to structurally
// equal values.
func (b Bindings) Equal(o Bindings) bool {
	if len(b) != len(o) {
		return false
	}
	for k, v := range b {
		ov, present := o[k]
		if !present || !dl.Equal(v, ov) {
			return false
		}
	}
	return true
}

func (b Bindings) String() string {
	parts := make([]string, 0, len(b))
	for _, name := range b.Names() {
		parts = append(parts, name+"="+dl.Format(b[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
