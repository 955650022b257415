// Package mces - connectivity predicate for the connected variant.
//
// The predicate looks only at vertices touched by at least one preserved
// edge; G1 vertices outside the preserved subgraph are irrelevant to it.
package mces

import "github.com/katalvlaran/mces/core"

// preservedConnected reports whether the preserved edge set induces a single
// connected component. An empty set has no component and reports false: the
// connected solver never accepts "trivially connected because empty".
//
// Breadth-first traversal from an arbitrary endpoint; accept iff every
// touched vertex was reached.
//
// Complexity: O(P) time and space for P preserved edges.
func preservedConnected(preserved []core.Edge) bool {
	if len(preserved) == 0 {
		return false
	}

	// Adjacency restricted to the preserved subgraph.
	adj := make(map[string][]string, 2*len(preserved))
	for _, e := range preserved {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// BFS from an arbitrary touched vertex.
	var (
		start   = preserved[0].U
		visited = make(map[string]bool, len(adj))
		queue   = make([]string, 0, len(adj))
	)
	visited[start] = true
	queue = append(queue, start)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[id] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return len(visited) == len(adj)
}
