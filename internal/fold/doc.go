// Package fold is the transformation core: it walks the typed model tree
// and the raw document tree of one XMI file and folds their disjoint views
// of the same facts into a single normalized uml.Document.
//
// The hard part is association resolution. The source format spreads one
// semantic fact ("class A is associated with class B, multiplicity 1..*")
// across a typed model subtree, an extension tree of links between element
// identifiers, and raw connector nodes reachable only by identifier-keyed
// queries. The resolver stitches those views together: it classifies each
// link, decides which side is the owner and which the member relative to
// the class being serialized, computes cardinalities, and drops entries
// whose role cannot be identified.
//
// Every fold runs inside its own Context, which owns the per-parse name
// cache and both read-only tree handles. Nothing in this package mutates
// the inputs, so independent folds never interact.
package fold
