// Package core - immutable Graph construction and adjacency queries.
//
// Rationale (succinct):
//  1. Validation happens exactly once, in NewGraph; afterwards every accessor
//     is a read on frozen state, safe for concurrent use without locks.
//  2. Node and neighbor slices are pre-sorted in shortlex order so that the
//     solvers' enumeration order is fixed without re-sorting in hot paths.
//  3. Edge membership is a hashed set of normalized pairs: O(1) expected.
package core

import (
	"fmt"
	"sort"
)

// Graph is a finite undirected simple graph over opaque string node IDs.
// Zero value is not usable; construct via NewGraph.
type Graph struct {
	nodes []string            // canonical shortlex order
	index map[string]int      // node ID -> position in nodes
	adj   map[string][]string // node ID -> neighbors, shortlex order
	edges map[Edge]struct{}   // normalized edge set
	list  []Edge              // canonical edge enumeration order
}

// NewGraph validates and freezes a graph from a node list and an edge list.
//
// Contract:
//   - every node ID non-empty and unique (ErrEmptyNodeID / ErrDuplicateNode),
//   - no self-loops (ErrSelfLoop), no duplicate unordered pairs
//     (ErrDuplicateEdge), endpoints declared (ErrUnknownEndpoint).
//
// Origin-data guarantees (connectivity of generator output etc.) are the
// producer's responsibility; only internal consistency is enforced here.
//
// Complexity: O(V log V + E log E) time, O(V+E) space.
func NewGraph(nodes []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make([]string, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
		adj:   make(map[string][]string, len(nodes)),
		edges: make(map[Edge]struct{}, len(edges)),
		list:  make([]Edge, 0, len(edges)),
	}

	// Stage 1: nodes - uniqueness and shape.
	var id string
	for _, id = range nodes {
		if id == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.index[id]; dup {
			return nil, fmt.Errorf("node %q: %w", id, ErrDuplicateNode)
		}
		g.index[id] = 0 // position assigned after sorting
		g.nodes = append(g.nodes, id)
	}
	sort.Slice(g.nodes, func(i, j int) bool { return Less(g.nodes[i], g.nodes[j]) })

	var i int
	for i, id = range g.nodes {
		g.index[id] = i
	}

	// Stage 2: edges - normalization, endpoint existence, de-duplication.
	var (
		e  Edge
		ne Edge
	)
	for _, e = range edges {
		ne = NewEdge(e.U, e.V)
		if ne.U == ne.V {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrSelfLoop)
		}
		if _, ok := g.index[ne.U]; !ok {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrUnknownEndpoint)
		}
		if _, ok := g.index[ne.V]; !ok {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrUnknownEndpoint)
		}
		if _, dup := g.edges[ne]; dup {
			return nil, fmt.Errorf("edge {%s,%s}: %w", e.U, e.V, ErrDuplicateEdge)
		}
		g.edges[ne] = struct{}{}
		g.list = append(g.list, ne)
		g.adj[ne.U] = append(g.adj[ne.U], ne.V)
		g.adj[ne.V] = append(g.adj[ne.V], ne.U)
	}

	// Stage 3: freeze canonical orders.
	sort.Slice(g.list, func(i, j int) bool {
		if g.list[i].U != g.list[j].U {
			return Less(g.list[i].U, g.list[j].U)
		}

		return Less(g.list[i].V, g.list[j].V)
	})
	for id = range g.adj {
		nbrs := g.adj[id]
		sort.Slice(nbrs, func(i, j int) bool { return Less(nbrs[i], nbrs[j]) })
	}

	return g, nil
}

// Nodes returns the node IDs in canonical shortlex order.
// The returned slice is shared frozen state; callers must not mutate it.
//
// Complexity: O(1).
func (g *Graph) Nodes() []string { return g.nodes }

// Edges returns the normalized edges in canonical order.
// The returned slice is shared frozen state; callers must not mutate it.
//
// Complexity: O(1).
func (g *Graph) Edges() []Edge { return g.list }

// HasNode reports whether id belongs to the node set.
//
// Complexity: O(1) expected.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether the unordered pair {a,b} is an edge.
//
// Complexity: O(1) expected.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[NewEdge(a, b)]

	return ok
}

// Neighbors returns the adjacency list of id in canonical shortlex order.
// Returns ErrNodeNotFound for unknown IDs; a known isolated node yields an
// empty slice and a nil error.
//
// Complexity: O(1) expected.
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return g.adj[id], nil
}

// Degree returns the number of incident edges of id (0 for unknown IDs).
//
// Complexity: O(1) expected.
func (g *Graph) Degree(id string) int { return len(g.adj[id]) }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.list) }
