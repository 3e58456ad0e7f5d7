package hwdepth_test

import (
	"testing"

	hd "github.com/db47h/hwdepth"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	g := hd.Build(edges("b", "c", "a", "b", "b", "d", "a", "b"))
	assert.Equal(t, []string{"b", "a"}, g.Nodes())
	assert.Equal(t, []string{"c", "d"}, g.Successors("b"))
	assert.Equal(t, []string{"b", "b"}, g.Successors("a"))
	assert.Empty(t, g.Successors("c"))
	assert.Empty(t, g.Successors("nope"))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 4, g.EdgeCount())

	// Nodes returns a copy
	n := g.Nodes()
	n[0] = "x"
	assert.Equal(t, []string{"b", "a"}, g.Nodes())
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "a->b", hd.Edge{From: "a", To: "b"}.String())
}
