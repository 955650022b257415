// Package core - sentinel errors, node ordering, and the Edge value type.
//
// This file declares everything the rest of the package builds on: the
// canonical shortlex order over node IDs, the normalized Edge pair, and the
// construction-time sentinels.
package core

import "errors"

// Sentinel errors for graph construction and mapping operations.
var (
	// ErrEmptyNodeID indicates a node with an empty identifier.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates the same node ID was declared twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was declared twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrUnknownEndpoint indicates an edge endpoint missing from the node set.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not in node set")

	// ErrNodeNotFound indicates a lookup for a node the graph does not contain.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSourceMapped indicates an attempt to map an already-mapped source.
	ErrSourceMapped = errors.New("core: source already mapped")

	// ErrTargetUsed indicates an attempt to reuse an already-used target.
	ErrTargetUsed = errors.New("core: target already used")
)

// Less reports the canonical "shortlex" order over node IDs: shorter IDs sort
// first, equal lengths fall back to lexicographic comparison. For the purely
// numeric IDs produced by the generator ("1", "2", … "10") this coincides with
// numeric order, and it is total and deterministic for arbitrary opaque IDs.
//
// Complexity: O(len(a)+len(b)).
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// Edge is an unordered pair of distinct node IDs, normalized so that U < V in
// shortlex order. Construct via NewEdge to guarantee normalization.
type Edge struct {
	// U is the smaller endpoint (shortlex).
	U string

	// V is the larger endpoint (shortlex).
	V string
}

// NewEdge returns the normalized Edge for the unordered pair {a, b}.
// Normalization makes Edge usable as a map key for O(1) membership tests.
//
// Complexity: O(len(a)+len(b)).
func NewEdge(a, b string) Edge {
	if Less(b, a) {
		return Edge{U: b, V: a}
	}

	return Edge{U: a, V: b}
}
