// Package dlmatch matches structural patterns against description logic
// axioms.
//
// A pattern (package pattern) is unified with a target value (package
// dl) by Match, which returns the variable bindings of a successful
// match:
//
//	p := pattern.Of(dl.SubClassOfKind,
//	    pattern.F("subClass", pattern.V("x")),
//	    pattern.F("superClass", pattern.V("y")))
//	b, ok := dlmatch.Match(axiom, p) // b["x"], b["y"]
//
// Set patterns match unordered collections such as the classes of an
// EquivalentClasses axiom. Each item is assigned a distinct element by
// a backtracking search; the first assignment found in item order and
// element order wins. Without an ellipsis every element must be
// assigned. The search is exponential in the number of items in the
// worst case; MatchContext and FindContext accept a context to bound it.
//
// When two sub-matches bind the same variable, the bindings are merged
// if the values are structurally equal and the match fails otherwise.
//
// Find scans a corpus of axioms, and FindAndReplace additionally builds
// a replacement for every match with a Generator, typically a Template.
// Neither modifies the corpus.
package dlmatch
