package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-trick/pkg/core"
)

func mustParse(t *testing.T, text string) Grid {
	t.Helper()
	g, err := ParsePattern(text)
	require.NoError(t, err)
	return g
}

// runExpected steps from states[0] and checks each following state in turn.
func runExpected(t *testing.T, states []Grid) *Engine {
	t.Helper()
	e := New(states[0], states[0].Width(), states[0].Height())
	for i := 1; i < len(states); i++ {
		got := e.Step()
		require.Truef(t, states[i].Equal(got), "step %d:\nwant\n%s\ngot\n%s", i, states[i], got)
	}
	return e
}

func TestBlock(t *testing.T) {
	block := mustParse(t, ".....\n.....\n..OO.\n..OO.\n.....\n")
	e := New(block, 5, 5)

	require.True(t, block.Equal(e.Step()))
	assert.False(t, e.IsCycling())

	require.True(t, block.Equal(e.Step()))
	assert.True(t, e.IsCycling())
	assert.Equal(t, 1, e.Period())

	for i := 0; i < 5; i++ {
		require.True(t, block.Equal(e.Step()))
		assert.True(t, e.IsCycling())
	}
	assert.Equal(t, 1, e.VisitedCount())
}

func TestBlinker(t *testing.T) {
	horizontal := mustParse(t, ".....\n.....\n.OOO.\n.....\n.....\n")
	vertical := mustParse(t, ".....\n..O..\n..O..\n..O..\n.....\n")

	e := runExpected(t, []Grid{horizontal, vertical, horizontal})
	assert.False(t, e.IsCycling())

	require.True(t, vertical.Equal(e.Step()))
	assert.True(t, e.IsCycling())
	assert.Equal(t, 2, e.Period())
	assert.Equal(t, 2, e.VisitedCount())
	assert.Equal(t, 3, e.Generation())
}

func TestGlider(t *testing.T) {
	states := []Grid{
		mustParse(t, ".....\n..O..\nO.O..\n.OO..\n.....\n"),
		mustParse(t, ".....\n.O...\n..OO.\n.OO..\n.....\n"),
		mustParse(t, ".....\n..O..\n...O.\n.OOO.\n.....\n"),
		mustParse(t, ".....\n.....\n.O.O.\n..OO.\n..O..\n"),
		mustParse(t, ".....\n.....\n...O.\n.O.O.\n..OO.\n"),
	}
	e := runExpected(t, states)
	assert.False(t, e.IsCycling())
	assert.Zero(t, e.Period())
	assert.Equal(t, 4, e.VisitedCount())
}

func TestGliderEventuallyCycles(t *testing.T) {
	// A glider on a 5×5 torus returns to its start after 20 generations.
	start := mustParse(t, ".....\n..O..\nO.O..\n.OO..\n.....\n")
	e := New(start, 5, 5)
	for i := 0; i < 20; i++ {
		e.Step()
		require.False(t, e.IsCycling(), "generation %d", e.Generation())
	}
	require.True(t, start.Equal(e.State()))
	e.Step()
	assert.True(t, e.IsCycling())
	assert.Equal(t, 20, e.Period())
}

func TestCyclingIsMonotonic(t *testing.T) {
	e := Random(12, 12, core.NewRNG(7))
	seen := false
	for i := 0; i < 500; i++ {
		e.Step()
		if seen {
			require.True(t, e.IsCycling(), "cycling reset at generation %d", e.Generation())
		}
		seen = e.IsCycling()
	}
}

func TestStepPreservesDimensions(t *testing.T) {
	for _, size := range []core.Size{{W: 1, H: 1}, {W: 1, H: 6}, {W: 9, H: 1}, {W: 13, H: 4}, {W: 32, H: 32}} {
		e := Random(size.W, size.H, core.NewRNG(int64(size.W*100+size.H)))
		for i := 0; i < 20; i++ {
			g := e.Step()
			require.Len(t, g, size.H)
			for _, row := range g {
				require.Len(t, row, size.W)
			}
			require.NoError(t, g.Validate(size.W, size.H))
		}
	}
}

func TestEmptyGrid(t *testing.T) {
	e := Random(0, 0, core.NewRNG(1))
	assert.Empty(t, e.Step())
	assert.False(t, e.IsCycling())

	assert.Empty(t, e.Step())
	assert.True(t, e.IsCycling())
	assert.Equal(t, 1, e.VisitedCount())
}

func TestZeroValueEngine(t *testing.T) {
	var e Engine
	assert.Equal(t, core.Size{}, e.Size())
	assert.Zero(t, e.VisitedCount())
	assert.Empty(t, e.Step())
	e.Step()
	assert.True(t, e.IsCycling())
}

func TestVisitedIgnoresInitialGrid(t *testing.T) {
	// A lone cell dies, leaving the empty grid; the start is never recorded.
	start := NewGrid(4, 4)
	start[1][1] = true
	e := New(start, 4, 4)
	e.Step()
	assert.Equal(t, 1, e.VisitedCount())
	e.Step()
	assert.True(t, e.IsCycling())
	assert.Equal(t, 1, e.VisitedCount())
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(10, 6, core.NewRNG(3))
	b := Random(10, 6, core.NewRNG(3))
	require.True(t, a.State().Equal(b.State()))
	require.NoError(t, a.State().Validate(10, 6))
}

type constSource bool

func (c constSource) Bool() bool { return bool(c) }

func TestRandomUsesSource(t *testing.T) {
	e := Random(3, 2, constSource(true))
	assert.Equal(t, 6, e.State().Population())
}

func TestNewChecked(t *testing.T) {
	_, err := NewChecked(Grid{{true, false}, {true}}, 2, 2)
	require.ErrorIs(t, err, ErrMalformedGrid)

	_, err = NewChecked(NewGrid(3, 2), 3, 3)
	require.ErrorIs(t, err, ErrMalformedGrid)

	e, err := NewChecked(NewGrid(3, 2), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 3, H: 2}, e.Size())
}
