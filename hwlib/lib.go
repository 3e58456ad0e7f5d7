// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/db47h/hwdepth"
	"github.com/pkg/errors"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Models returns all the models provided by this package: the full and half
// adders, and, nand, or, nor, xor and xnor gates from 2 to MaxGateInputs
// inputs, not, buf, mux, dmux and dff.
//
func Models() []*hwdepth.CellModel {
	ms := []*hwdepth.CellModel{FullAdder(), HalfAdder()}
	for _, n := range gateNames {
		for i := 2; i <= MaxGateInputs; i++ {
			ms = append(ms, Gate(n, i))
		}
	}
	return append(ms, Not(), Buf(), Mux(), DMux(), DFF())
}

// Standard returns a new library holding all of Models().
//
func Standard() *hwdepth.Library {
	l, err := hwdepth.NewLibrary(Models()...)
	if err != nil {
		panic(err)
	}
	return l
}

// cell library file layout.
type libFile struct {
	Standard bool       `yaml:"standard"`
	Cells    []cellDef `yaml:"cells"`
}

type cellDef struct {
	Name    string   `yaml:"name"`
	Ports   []string `yaml:"ports"`
	Inputs  []string `yaml:"inputs"`
	Outputs []string `yaml:"outputs"`
	Arcs    []string `yaml:"arcs"`
}

// model converts a cell definition to a CellModel.
//
// Ports defaults to inputs followed by outputs. Arcs are written "from->to";
// without explicit arcs, every output depends on every input.
//
func (c *cellDef) model() (*hwdepth.CellModel, error) {
	m := &hwdepth.CellModel{Name: c.Name, Ports: c.Ports}
	if len(m.Ports) == 0 {
		m.Ports = append(append([]string(nil), c.Inputs...), c.Outputs...)
	}
	if c.Arcs == nil {
		m.Arcs = arcs(c.Inputs, c.Outputs)
	}
	for _, a := range c.Arcs {
		from, to, ok := strings.Cut(a, "->")
		if !ok {
			return nil, errors.Errorf("cell %s: invalid arc %q, expected \"from->to\"", c.Name, a)
		}
		m.Arcs = append(m.Arcs, hwdepth.Arc{From: strings.TrimSpace(from), To: strings.TrimSpace(to)})
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadYAML reads a cell library in YAML format:
//
//	standard: true         # start from Standard()
//	cells:
//	  - name: maj3
//	    inputs: [a, b, c]
//	    outputs: [y]       # arcs default to every input -> every output
//	  - name: latch
//	    ports: [en, d, q]  # no inputs/outputs and no arcs: a sequential cell
//	  - name: fa
//	    ports: [x, y, ci, s, co]
//	    arcs: ["x->s", "y->s", "ci->s", "ci->co"]
//
// Cells replace models of the same name and arity.
//
func LoadYAML(r io.Reader) (*hwdepth.Library, error) {
	var f libFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode cell library")
	}
	var l *hwdepth.Library
	if f.Standard {
		l = Standard()
	} else {
		l, _ = hwdepth.NewLibrary()
	}
	for i := range f.Cells {
		m, err := f.Cells[i].model()
		if err != nil {
			return nil, errors.Wrapf(err, "cell #%d", i)
		}
		if err = l.Add(m); err != nil {
			return nil, errors.Wrapf(err, "cell #%d", i)
		}
	}
	return l, nil
}

// Load loads a YAML cell library from the given location. Any URL supported
// by github.com/viant/afs can be used, including plain file paths.
//
func Load(ctx context.Context, URL string) (*hwdepth.Library, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrap(err, "read cell library "+URL)
	}
	l, err := LoadYAML(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, URL)
	}
	return l, nil
}
