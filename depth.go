// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwdepth

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrCycle is the error matched by errors.Is for any *CycleError.
//
var ErrCycle = errors.New("combinational cycle")

// CycleError is returned when a dependency cycle is found while computing
// depths. Path lists the signals of the cycle, starting and ending with the
// same signal.
//
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return ErrCycle.Error() + ": " + strings.Join(e.Path, " -> ")
}

// Unwrap returns ErrCycle.
//
func (e *CycleError) Unwrap() error { return ErrCycle }

// walker resolves longest forward paths. Its cache and path markers are only
// valid for the graph and the call that created it.
//
type walker struct {
	g      *Graph
	depth  map[string]int
	next   map[string]string // successor of a node on one of its longest paths
	onPath map[string]bool
	stack  []frame
}

type frame struct {
	node string
	i    int // next successor to visit
}

func newWalker(g *Graph) *walker {
	return &walker{
		g:      g,
		depth:  make(map[string]int, len(g.nodes)),
		next:   make(map[string]string, len(g.nodes)),
		onPath: make(map[string]bool),
	}
}

// resolve returns the length of the longest forward path from root.
// The graph is walked in post-order with an explicit stack so that long
// dependency chains do not grow the goroutine stack.
//
func (w *walker) resolve(root string) (int, error) {
	if d, ok := w.depth[root]; ok {
		return d, nil
	}
	w.stack = append(w.stack[:0], frame{node: root})
	w.onPath[root] = true
	for len(w.stack) > 0 {
		f := &w.stack[len(w.stack)-1]
		succ := w.g.succ[f.node]
		if f.i < len(succ) {
			s := succ[f.i]
			f.i++
			if _, ok := w.depth[s]; ok {
				continue
			}
			if w.onPath[s] {
				return 0, w.cycle(s)
			}
			w.onPath[s] = true
			w.stack = append(w.stack, frame{node: s})
			continue
		}
		// all successors resolved. Sinks end up with depth 0.
		d := 0
		for _, s := range succ {
			if sd := w.depth[s] + 1; sd > d {
				d = sd
				w.next[f.node] = s
			}
		}
		w.depth[f.node] = d
		delete(w.onPath, f.node)
		w.stack = w.stack[:len(w.stack)-1]
	}
	return w.depth[root], nil
}

// cycle builds a CycleError for the back edge from the top of the stack to s.
//
func (w *walker) cycle(s string) error {
	i := len(w.stack) - 1
	for i > 0 && w.stack[i].node != s {
		i--
	}
	path := make([]string, 0, len(w.stack)-i+1)
	for _, f := range w.stack[i:] {
		path = append(path, f.node)
	}
	return &CycleError{Path: append(path, s)}
}

// longest resolves every node and returns the maximum depth together with the
// first node reaching it.
//
func (w *walker) longest() (int, string, error) {
	best, root := 0, ""
	for _, n := range w.g.nodes {
		d, err := w.resolve(n)
		if err != nil {
			return 0, "", err
		}
		if root == "" || d > best {
			best, root = d, n
		}
	}
	return best, root, nil
}

// LongestPath returns the length of the longest directed path starting at n.
// Signals without recorded consumers have a longest path of 0.
//
func (g *Graph) LongestPath(n string) (int, error) {
	return newWalker(g).resolve(n)
}

// Depth returns the combinational depth of the graph: the maximum of
// LongestPath over all nodes. An empty graph has depth 0. If the graph
// contains a cycle, Depth returns a *CycleError.
//
func (g *Graph) Depth() (int, error) {
	d, _, err := newWalker(g).longest()
	return d, err
}

// CriticalPath returns one of the longest dependency chains in the graph,
// from its primary input to its sink. The chain has Depth()+1 signals, or none
// for an empty graph.
//
func (g *Graph) CriticalPath() ([]string, error) {
	w := newWalker(g)
	_, n, err := w.longest()
	if err != nil || n == "" {
		return nil, err
	}
	path := []string{n}
	for {
		nx, ok := w.next[n]
		if !ok {
			return path, nil
		}
		path = append(path, nx)
		n = nx
	}
}

// ComputeDepth returns the combinational depth of g. Graphs containing a
// cycle have a depth of 0. Use Graph.Depth to tell cycles apart from empty
// graphs.
//
func ComputeDepth(g *Graph) int {
	d, err := g.Depth()
	if err != nil {
		return 0
	}
	return d
}
