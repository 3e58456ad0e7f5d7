// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwdepth

import (
	"strconv"

	"github.com/pkg/errors"
)

// An Arc is a combinational dependency between two ports of a cell: the
// value of port To depends on the value of port From.
//
type Arc struct {
	From string
	To   string
}

// A CellModel describes the port-to-port dependencies of a cell type.
//
// For example, a 2 input AND gate instantiated like a Verilog primitive
// (output first) can be described like this:
//
//	and2 := &hwdepth.CellModel{
//		Name:  "and",
//		Ports: []string{"out", "a", "b"},
//		Arcs:  []hwdepth.Arc{{"a", "out"}, {"b", "out"}},
//	}
//
// Ports lists the port names in positional order. Cells without arcs, like
// registers, break combinational paths.
//
type CellModel struct {
	Name  string
	Ports []string
	Arcs  []Arc
}

// Arity returns the number of ports of the cell.
//
func (m *CellModel) Arity() int { return len(m.Ports) }

// Validate checks that the model is well formed.
//
func (m *CellModel) Validate() error {
	if m.Name == "" {
		return errors.New("cell with empty name")
	}
	if len(m.Ports) == 0 {
		return errors.New("cell " + m.Name + " has no ports")
	}
	ports := make(map[string]bool, len(m.Ports))
	for _, p := range m.Ports {
		if p == "" {
			return errors.New("cell " + m.Name + " has an empty port name")
		}
		if ports[p] {
			return errors.New("cell " + m.Name + ": duplicate port " + p)
		}
		ports[p] = true
	}
	for _, a := range m.Arcs {
		if !ports[a.From] {
			return errors.Errorf("cell %s: unknown port %q in arc %s->%s", m.Name, a.From, a.From, a.To)
		}
		if !ports[a.To] {
			return errors.Errorf("cell %s: unknown port %q in arc %s->%s", m.Name, a.To, a.From, a.To)
		}
		if a.From == a.To {
			return errors.Errorf("cell %s: port %s depends on itself", m.Name, a.From)
		}
	}
	return nil
}

// bind maps the model's port names to the given connections. Named
// connections are used when all of them name a known port, positional order
// otherwise. The caller must make sure that len(names) == len(signals) ==
// m.Arity().
//
func (m *CellModel) bind(names, signals []string) map[string]string {
	pins := make(map[string]string, len(m.Ports))
	named := true
	for _, n := range names {
		if n == "" {
			named = false
			break
		}
		pins[n] = ""
	}
	if named {
		for _, p := range m.Ports {
			if _, ok := pins[p]; !ok {
				named = false
				break
			}
		}
	}
	if named {
		for i, n := range names {
			pins[n] = signals[i]
		}
		return pins
	}
	for i, p := range m.Ports {
		pins[p] = signals[i]
	}
	return pins
}

// edges returns the dependency edges of an instance of m connected to the
// given signals. Arcs touching unconnected ports are dropped.
//
func (m *CellModel) edges(names, signals []string) []Edge {
	pins := m.bind(names, signals)
	out := make([]Edge, 0, len(m.Arcs))
	for _, a := range m.Arcs {
		from, to := pins[a.From], pins[a.To]
		if from == "" || to == "" {
			continue
		}
		out = append(out, Edge{from, to})
	}
	return out
}

// FullAdder returns the model of a full adder cell:
//
//	full_adder name(A, B, Cin, Sum, Cout);
//
// Both Sum and Cout depend on every input, so a carry output sits one hop
// after the carry input of the same stage.
//
func FullAdder() *CellModel {
	return &CellModel{
		Name:  "full_adder",
		Ports: []string{"A", "B", "Cin", "Sum", "Cout"},
		Arcs: []Arc{
			{"A", "Sum"}, {"B", "Sum"}, {"Cin", "Sum"},
			{"Cin", "Cout"}, {"A", "Cout"}, {"B", "Cout"},
		},
	}
}

type cellKey struct {
	name  string
	arity int
}

// A Library is a table of cell models indexed by cell type and arity.
//
type Library struct {
	cells map[cellKey]*CellModel
	names []cellKey
}

// NewLibrary returns a library holding the given models.
//
func NewLibrary(models ...*CellModel) (*Library, error) {
	l := &Library{cells: make(map[cellKey]*CellModel)}
	for _, m := range models {
		if err := l.Add(m); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// DefaultLibrary returns a new library that only knows about FullAdder.
//
func DefaultLibrary() *Library {
	l, err := NewLibrary(FullAdder())
	if err != nil {
		panic(err)
	}
	return l
}

// Add adds a cell model to the library. A model with the same name and arity
// as m is replaced.
//
func (l *Library) Add(m *CellModel) error {
	if err := m.Validate(); err != nil {
		return err
	}
	k := cellKey{m.Name, m.Arity()}
	if _, ok := l.cells[k]; !ok {
		l.names = append(l.names, k)
	}
	l.cells[k] = m
	return nil
}

// Lookup returns the model for the given cell type and port count, or nil if
// there is none. Lookup on a nil Library always returns nil.
//
func (l *Library) Lookup(name string, arity int) *CellModel {
	if l == nil {
		return nil
	}
	return l.cells[cellKey{name, arity}]
}

// Len returns the number of models in the library.
//
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Names returns the cell types in the library as name/arity strings, in the
// order they were first added.
//
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.names))
	for i, k := range l.names {
		out[i] = k.name + "/" + strconv.Itoa(k.arity)
	}
	return out
}
