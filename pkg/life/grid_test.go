package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridEqual(t *testing.T) {
	a := Grid{{true, false}, {false, true}}
	b := a.Clone()
	require.True(t, a.Equal(b))

	b[1][1] = false
	assert.False(t, a.Equal(b))
	assert.True(t, a[1][1], "clone must not share rows")

	assert.False(t, Grid{{true}}.Equal(Grid{{true, false}}))
	assert.False(t, Grid{{true}}.Equal(Grid{{true}, {true}}))
	assert.True(t, Grid{}.Equal(Grid(nil)))
}

func TestGridHash(t *testing.T) {
	a := Grid{{true, false, true}, {false, false, true}}
	assert.Equal(t, a.Hash(), a.Clone().Hash())

	b := a.Clone()
	b[0][1] = true
	assert.NotEqual(t, a.Hash(), b.Hash())

	// Same cells, different shape.
	flat := Grid{{true, false, true, false, false, true}}
	assert.NotEqual(t, a.Hash(), flat.Hash())
	assert.NotEqual(t, NewGrid(0, 2).Hash(), NewGrid(0, 3).Hash())
	assert.NotEqual(t, NewGrid(8, 1).Hash(), NewGrid(9, 1).Hash())
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid(4, 3)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Zero(t, g.Population())
	assert.Zero(t, Grid(nil).Width())
}

func TestGridString(t *testing.T) {
	g := Grid{{true, false}, {false, true}}
	assert.Equal(t, "O.\n.O\n", g.String())
}
