package hwdepth_test

import (
	"testing"

	hd "github.com/db47h/hwdepth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellModel_Validate(t *testing.T) {
	data := []struct {
		name string
		m    hd.CellModel
		err  string
	}{
		{"ok", hd.CellModel{Name: "buf", Ports: []string{"o", "i"}, Arcs: []hd.Arc{{From: "i", To: "o"}}}, ""},
		{"no_arcs", hd.CellModel{Name: "dff", Ports: []string{"d", "q"}}, ""},
		{"no_name", hd.CellModel{Ports: []string{"a"}}, "cell with empty name"},
		{"no_ports", hd.CellModel{Name: "x"}, "cell x has no ports"},
		{"empty_port", hd.CellModel{Name: "x", Ports: []string{"a", ""}}, "cell x has an empty port name"},
		{"dup_port", hd.CellModel{Name: "x", Ports: []string{"a", "a"}}, "cell x: duplicate port a"},
		{"unknown_from", hd.CellModel{Name: "x", Ports: []string{"a"}, Arcs: []hd.Arc{{From: "b", To: "a"}}},
			`cell x: unknown port "b" in arc b->a`},
		{"unknown_to", hd.CellModel{Name: "x", Ports: []string{"a"}, Arcs: []hd.Arc{{From: "a", To: "c"}}},
			`cell x: unknown port "c" in arc a->c`},
		{"self", hd.CellModel{Name: "x", Ports: []string{"a"}, Arcs: []hd.Arc{{From: "a", To: "a"}}},
			"cell x: port a depends on itself"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			err := d.m.Validate()
			if d.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, d.err)
		})
	}
}

func TestLibrary(t *testing.T) {
	l := hd.DefaultLibrary()
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, []string{"full_adder/5"}, l.Names())
	fa := l.Lookup("full_adder", 5)
	require.NotNil(t, fa)
	assert.Equal(t, 5, fa.Arity())
	assert.Nil(t, l.Lookup("full_adder", 4))
	assert.Nil(t, l.Lookup("half_adder", 5))

	buf := &hd.CellModel{Name: "buf", Ports: []string{"o", "i"}, Arcs: []hd.Arc{{From: "i", To: "o"}}}
	require.NoError(t, l.Add(buf))
	inv := &hd.CellModel{Name: "buf", Ports: []string{"o", "i"}}
	require.NoError(t, l.Add(inv))
	assert.Same(t, inv, l.Lookup("buf", 2))
	assert.Equal(t, []string{"full_adder/5", "buf/2"}, l.Names())

	assert.Error(t, l.Add(&hd.CellModel{Name: "bad"}))
	_, err := hd.NewLibrary(hd.FullAdder(), &hd.CellModel{})
	assert.Error(t, err)

	var nilLib *hd.Library
	assert.Nil(t, nilLib.Lookup("full_adder", 5))
	assert.Zero(t, nilLib.Len())
	assert.Nil(t, nilLib.Names())
}

func TestExtractor_customCell(t *testing.T) {
	// a majority gate: out depends on all three inputs
	maj, err := hd.NewLibrary(&hd.CellModel{
		Name:  "maj3",
		Ports: []string{"y", "a", "b", "c"},
		Arcs:  []hd.Arc{{From: "a", To: "y"}, {From: "b", To: "y"}, {From: "c", To: "y"}},
	})
	require.NoError(t, err)
	x := hd.NewExtractor(maj)
	src := "maj3 m0(c1, a0, b0, c0);\nmaj3 m1(c2, a1, b1, c1);\nmaj3 m2(c3, a2, b2, c2);"
	assert.Equal(t, edges(
		"a0", "c1", "b0", "c1", "c0", "c1",
		"a1", "c2", "b1", "c2", "c1", "c2",
		"a2", "c3", "b2", "c3", "c2", "c3"), x.Extract(src))
	g := hd.Build(x.Extract(src))
	d, err := g.Depth()
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}
