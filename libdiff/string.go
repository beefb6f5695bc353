package libdiff

import (
	"strings"

	"github.com/signadot/dlmatch/dl"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Markers wrap the inserted and deleted runs of a diff.
type Markers struct {
	Insert func(string) string
	Delete func(string) string
}

var DefaultMarkers = Markers{
	Insert: func(s string) string { return "{+" + s + "+}" },
	Delete: func(s string) string { return "[-" + s + "-]" },
}

// DiffString renders the difference between from and to inline,
// marking deleted and inserted runs. When more than half of the
// shorter string changes, the result is simply from deleted and to
// inserted. The boolean is false if the strings are equal.
func DiffString(from, to string, m Markers) (string, bool) {
	if from == to {
		return from, false
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if diffSize(diffs) > min(len(from), len(to))/2 {
		return m.Delete(from) + m.Insert(to), true
	}
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			buf.WriteString(m.Insert(diff.Text))
		case diffpatch.DiffDelete:
			buf.WriteString(m.Delete(diff.Text))
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	return buf.String(), true
}

// diffSize is the number of characters inserted or deleted.
func diffSize(diffs []diffpatch.Diff) int {
	n := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			n += len(diffs[i].Text)
		}
	}
	return n
}

// DiffNodes is DiffString over the functional syntax of from and to.
func DiffNodes(from, to any, m Markers) (string, bool) {
	return DiffString(dl.Format(from), dl.Format(to), m)
}
