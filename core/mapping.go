// Package core - the injective Mapping between two graphs and the derivation
// of preserved edges.
//
// Rationale (succinct):
//  1. A Mapping is the single mutable object threaded through a search; it is
//     owned by exactly one top-level solve call and never shared.
//  2. Extend/Unset are O(1); the incremental Gain of an extension is
//     O(deg(u)), which is what makes backtracking bounds cheap.
//  3. PreservedEdges is always re-derived from the mapping - the preserved
//     set is never stored independently, so it cannot drift out of sync.
package core

// Mapping is an injective partial function from the nodes of a pattern graph
// G1 into the nodes of a target graph G2. Zero value is not usable; construct
// via NewMapping.
type Mapping struct {
	forward map[string]string // u in V1 -> v in V2
	used    map[string]string // v in V2 -> u in V1 (injectivity index)
}

// NewMapping returns an empty mapping with capacity hints for n pairs.
//
// Complexity: O(1).
func NewMapping(n int) *Mapping {
	return &Mapping{
		forward: make(map[string]string, n),
		used:    make(map[string]string, n),
	}
}

// Len returns the number of mapped pairs.
func (m *Mapping) Len() int { return len(m.forward) }

// Image returns the target of u and whether u is mapped.
//
// Complexity: O(1) expected.
func (m *Mapping) Image(u string) (string, bool) {
	v, ok := m.forward[u]

	return v, ok
}

// Used reports whether target v is already the image of some source.
//
// Complexity: O(1) expected.
func (m *Mapping) Used(v string) bool {
	_, ok := m.used[v]

	return ok
}

// Extend adds the pair u->v. Fails with ErrSourceMapped if u already has an
// image and ErrTargetUsed if v is already taken, preserving injectivity.
//
// Complexity: O(1) expected.
func (m *Mapping) Extend(u, v string) error {
	if _, ok := m.forward[u]; ok {
		return ErrSourceMapped
	}
	if _, ok := m.used[v]; ok {
		return ErrTargetUsed
	}
	m.forward[u] = v
	m.used[v] = u

	return nil
}

// Unset removes the pair anchored at source u, if present. Backtracking
// searches rely on Extend/Unset being exact inverses.
//
// Complexity: O(1) expected.
func (m *Mapping) Unset(u string) {
	v, ok := m.forward[u]
	if !ok {
		return
	}
	delete(m.forward, u)
	delete(m.used, v)
}

// Pairs returns the mapped pairs as a plain map (copied; safe to mutate).
//
// Complexity: O(k) for k mapped pairs.
func (m *Mapping) Pairs() map[string]string {
	out := make(map[string]string, len(m.forward))
	for u, v := range m.forward {
		out[u] = v
	}

	return out
}

// Clone returns an independent copy of the mapping.
//
// Complexity: O(k).
func (m *Mapping) Clone() *Mapping {
	c := NewMapping(len(m.forward))
	for u, v := range m.forward {
		c.forward[u] = v
		c.used[v] = u
	}

	return c
}

// Gain counts how many additional edges of g1 become preserved when the
// mapping is extended by u->v: for each already-mapped neighbor w of u, the
// edge {u,w} is newly preserved iff {v, image(w)} is an edge of g2.
//
// The caller is expected to invoke Gain before Extend(u, v).
//
// Complexity: O(deg_g1(u)) expected.
func (m *Mapping) Gain(g1, g2 *Graph, u, v string) int {
	nbrs, err := g1.Neighbors(u)
	if err != nil {
		return 0
	}

	var (
		gain int
		w    string
	)
	for _, w = range nbrs {
		if img, ok := m.forward[w]; ok && g2.HasEdge(v, img) {
			gain++
		}
	}

	return gain
}

// PreservedEdges derives the subset of g1's edges whose endpoints are both
// mapped and whose images are adjacent in g2, in g1's canonical edge order.
//
// Complexity: O(|E1|) expected.
func PreservedEdges(g1, g2 *Graph, m *Mapping) []Edge {
	var (
		out []Edge
		e   Edge
		mu  string
		mv  string
		okU bool
		okV bool
	)
	for _, e = range g1.Edges() {
		mu, okU = m.Image(e.U)
		mv, okV = m.Image(e.V)
		if okU && okV && g2.HasEdge(mu, mv) {
			out = append(out, e)
		}
	}

	return out
}

// CountPreserved is PreservedEdges without materializing the slice.
//
// Complexity: O(|E1|) expected.
func CountPreserved(g1, g2 *Graph, m *Mapping) int {
	var (
		n   int
		e   Edge
		mu  string
		mv  string
		okU bool
		okV bool
	)
	for _, e = range g1.Edges() {
		mu, okU = m.Image(e.U)
		mv, okV = m.Image(e.V)
		if okU && okV && g2.HasEdge(mu, mv) {
			n++
		}
	}

	return n
}
