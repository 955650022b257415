// Package core - lossless JSON codec for the graph wire shape.
//
// The HTTP API and the CLI exchange graphs as
//
//	{"nodes":[{"id":"1"},...], "edges":[{"source":"1","target":"2"},...]}
//
// and mappings/preserved-edge sets as
//
//	{"mapping":{"1":"a",...}, "preserved_edges":[["1","2"],...], "stats":{...}}
//
// This file implements the graph half; the result half lives with the solver
// contract. Decoding funnels through NewGraph, so a wire graph that violates
// the structural invariants is rejected with the same sentinels as any other
// construction path.
package core

import "encoding/json"

// NodeDoc is the wire form of a node.
type NodeDoc struct {
	ID string `json:"id"`
}

// EdgeDoc is the wire form of an edge.
type EdgeDoc struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphDoc is the wire form of a Graph.
type GraphDoc struct {
	Nodes []NodeDoc `json:"nodes"`
	Edges []EdgeDoc `json:"edges"`
}

// Doc returns the wire form of g in canonical order.
//
// Complexity: O(V+E).
func (g *Graph) Doc() GraphDoc {
	doc := GraphDoc{
		Nodes: make([]NodeDoc, 0, g.NodeCount()),
		Edges: make([]EdgeDoc, 0, g.EdgeCount()),
	}
	for _, id := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: id})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{Source: e.U, Target: e.V})
	}

	return doc
}

// FromDoc validates and freezes a Graph from its wire form.
//
// Complexity: as NewGraph.
func FromDoc(doc GraphDoc) (*Graph, error) {
	nodes := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodes = append(nodes, n.ID)
	}
	edges := make([]Edge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edges = append(edges, Edge{U: e.Source, V: e.Target})
	}

	return NewGraph(nodes, edges)
}

// MarshalJSON encodes g in the wire shape.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Doc())
}

// UnmarshalJSON decodes and validates the wire shape in place.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var doc GraphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := FromDoc(doc)
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}
