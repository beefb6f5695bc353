// Package dl provides the node model for description logic axioms and
// class expressions matched by dlmatch.
//
// # Overview
//
// Nodes form a closed tagged union: every node carries a Kind and
// exposes its sub-values through Field, a total lookup keyed by
// accessor name. A field value is one of
//
//   - a Node (for example the filler of ObjectSomeValuesFrom)
//   - a Set, an unordered collection of nodes (the operands of
//     ObjectIntersectionOf, the classes of EquivalentClasses)
//   - a string (the IRI of an entity)
//
// Looking up a field the kind does not have returns false rather than
// panicking, so patterns can be applied across heterogeneous axioms.
//
// # Kinds
//
// Concrete kinds are carried by nodes. The abstract kinds EntityKind,
// ClassExpressionKind and AxiomKind group them for type constraints:
//
//	dl.ClassKind.Is(dl.ClassExpressionKind) // true
//	dl.SubClassOfKind.Is(dl.AxiomKind)      // true
//
// # Equality
//
// Equal and Compare are structural. Sets compare as multisets, so
// EquivalentClasses(A B) equals EquivalentClasses(B A).
//
// # Construction
//
// The NewXxx helpers build nodes directly. New builds a node from a
// kind and a field map and checks the shape of every field; it is what
// replacement templates use.
package dl
