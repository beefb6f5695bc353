package debug

import (
	"fmt"
	"os"

	"github.com/signadot/dlmatch/dl"
)

// Logf writes a trace line to stderr. Nodes and sets are rendered in
// functional syntax.
func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case dl.Node, dl.Set:
			args[i] = dl.Format(a)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
