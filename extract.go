// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwdepth

import (
	"io"
	"log/slog"

	"github.com/db47h/hwdepth/internal/hdl"
)

// A FallbackFunc returns the dependency edges of an instance whose cell type
// is not found in the cell library. signals lists the connected signals in
// port order; unconnected ports are empty strings.
//
type FallbackFunc func(cellType string, signals []string) []Edge

// AdjacentPorts is the default FallbackFunc. It assumes that each port
// depends on the port right before it in the port list.
//
// This is a rough approximation that holds for chains of buffers and little
// else. Register a CellModel for cell types where accuracy matters.
//
func AdjacentPorts(_ string, signals []string) []Edge {
	var out []Edge
	for i := 1; i < len(signals); i++ {
		if signals[i-1] == "" || signals[i] == "" {
			continue
		}
		out = append(out, Edge{signals[i-1], signals[i]})
	}
	return out
}

// An Extractor extracts signal dependencies from circuit descriptions.
//
// Two kinds of statements are recognized:
//
//	<type> <name> ( <ports> );    // cell instances
//	assign <lhs> = <expression>;  // continuous assignments
//
// Instances of cell types found in Cells emit the edges of their model, other
// instances are handed to Fallback. Assignments emit an edge from every
// identifier of the expression to the target. Any other statement is ignored.
//
type Extractor struct {
	Cells    *Library     // nil means no known cell types
	Fallback FallbackFunc // defaults to AdjacentPorts
	Logger   *slog.Logger // defaults to a logger that discards everything
}

// NewExtractor returns an Extractor using the given cell library.
//
func NewExtractor(cells *Library) *Extractor {
	return &Extractor{Cells: cells}
}

// Extract is a shortcut for NewExtractor(DefaultLibrary()).Extract(text).
//
func Extract(text string) []Edge {
	return NewExtractor(DefaultLibrary()).Extract(text)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func (x *Extractor) logger() *slog.Logger {
	if x.Logger != nil {
		return x.Logger
	}
	return discard
}

// Extract returns the dependency edges found in text, without duplicates, in
// order of appearance. Unrecognized statements are skipped.
//
func (x *Extractor) Extract(text string) []Edge {
	log := x.logger()
	fallback := x.Fallback
	if fallback == nil {
		fallback = AdjacentPorts
	}
	var es edgeSet
	var nInst, nAssign, nSkip int
	for _, st := range hdl.Statements(text) {
		v, err := hdl.Classify(st.Text)
		switch v := v.(type) {
		case *hdl.Instance:
			nInst++
			es.add(x.instance(v, fallback)...)
		case *hdl.Assignment:
			nAssign++
			for _, in := range v.RHS {
				if in != v.LHS {
					es.add(Edge{in, v.LHS})
				}
			}
		default:
			nSkip++
			log.Debug("statement skipped", "line", st.Line, "reason", err)
		}
	}
	log.Debug("extraction done", "instances", nInst, "assignments", nAssign, "skipped", nSkip, "edges", len(es.list))
	return es.list
}

func (x *Extractor) instance(inst *hdl.Instance, fallback FallbackFunc) []Edge {
	signals := inst.Signals()
	m := x.Cells.Lookup(inst.Type, len(signals))
	if m == nil {
		return fallback(inst.Type, signals)
	}
	names := make([]string, len(inst.Ports))
	for i, p := range inst.Ports {
		names[i] = p.Formal
	}
	return m.edges(names, signals)
}

// edgeSet collects unique edges in insertion order.
//
type edgeSet struct {
	seen map[Edge]struct{}
	list []Edge
}

func (s *edgeSet) add(edges ...Edge) {
	if s.seen == nil {
		s.seen = make(map[Edge]struct{})
	}
	for _, e := range edges {
		if _, ok := s.seen[e]; ok {
			continue
		}
		s.seen[e] = struct{}{}
		s.list = append(s.list, e)
	}
}
