package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gol "life-trick/pkg/life"
)

func TestBlinkerOscillation(t *testing.T) {
	g := gol.NewGrid(5, 5)
	g[1][2], g[2][2], g[3][2] = true, true, true
	life := FromGrid(g, 5, 5)
	w := life.Size().W

	life.Step()
	cells := life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			require.Equalf(t, shouldBeAlive, alive, "cell (%d,%d)", x, y)
		}
	}

	life.Step()
	assert.False(t, life.IsCycling())
	life.Step()
	assert.True(t, life.IsCycling())
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 12)
	b := New(16, 12)
	a.Reset(99)
	b.Reset(99)
	require.Equal(t, a.Cells(), b.Cells())

	a.Step()
	a.Step()
	a.Reset(99)
	assert.Equal(t, b.Cells(), a.Cells())
	assert.Zero(t, a.Engine().Generation())
	assert.Zero(t, a.Engine().VisitedCount())
}

func TestCellsMatchEngineState(t *testing.T) {
	life := New(7, 3)
	life.Reset(5)
	for i := 0; i < 4; i++ {
		life.Step()
		state := life.Engine().State()
		for y := 0; y < 3; y++ {
			for x := 0; x < 7; x++ {
				assert.Equal(t, state[y][x], life.Cells()[y*7+x] == 1)
			}
		}
	}
}
