// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwdepth

// An Edge is a dependency between two signals: the value of To cannot be
// considered stable until From is.
//
type Edge struct {
	From string
	To   string
}

func (e Edge) String() string {
	return e.From + "->" + e.To
}

// A Graph maps signals to the signals they directly feed.
//
// A Graph is immutable once built and can be shared freely.
//
type Graph struct {
	succ  map[string][]string
	nodes []string // producers in order of first appearance
	edges int
}

// Build builds a dependency graph from a list of edges. Edges sharing the same
// producer are aggregated into that producer's consumer list, in order.
// Duplicate edges are kept.
//
func Build(edges []Edge) *Graph {
	g := &Graph{succ: make(map[string][]string), edges: len(edges)}
	for _, e := range edges {
		s, ok := g.succ[e.From]
		if !ok {
			g.nodes = append(g.nodes, e.From)
		}
		g.succ[e.From] = append(s, e.To)
	}
	return g
}

// Successors returns the signals directly fed by n. The returned slice must
// not be modified.
//
func (g *Graph) Successors(n string) []string {
	return g.succ[n]
}

// Nodes returns the signals that have at least one recorded consumer, in
// order of first appearance.
//
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Len returns the number of signals with recorded consumers.
//
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges the graph was built from.
//
func (g *Graph) EdgeCount() int { return g.edges }
