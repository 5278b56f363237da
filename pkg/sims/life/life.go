package life

import (
	"life-trick/pkg/core"
	gol "life-trick/pkg/life"
)

// Life adapts a gol.Engine to the core.Sim contract.
type Life struct {
	w, h   int
	engine *gol.Engine
	cells  []uint8
}

// New returns a Life simulation with the provided dimensions and an all-dead
// board.
func New(w, h int) *Life {
	return FromGrid(gol.NewGrid(w, h), w, h)
}

// FromGrid wraps an explicit starting grid.
func FromGrid(g gol.Grid, w, h int) *Life {
	return Wrap(gol.New(g, w, h))
}

// Wrap adapts an existing engine.
func Wrap(e *gol.Engine) *Life {
	size := e.Size()
	l := &Life{w: size.W, h: size.H, engine: e, cells: make([]uint8, size.W*size.H)}
	l.sync()
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid as row-major 0/1 values.
func (l *Life) Cells() []uint8 { return l.cells }

// Engine exposes the wrapped engine.
func (l *Life) Engine() *gol.Engine { return l.engine }

// IsCycling reports whether the wrapped engine has seen a repeat.
func (l *Life) IsCycling() bool { return l.engine.IsCycling() }

// Reset randomizes the board using the provided seed and forgets all
// previously visited generations.
func (l *Life) Reset(seed int64) {
	l.engine = gol.Random(l.w, l.h, core.NewRNG(seed))
	l.sync()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.engine.Step()
	l.sync()
}

func (l *Life) sync() {
	for y, row := range l.engine.State() {
		for x, alive := range row {
			l.cells[y*l.w+x] = 0
			if alive {
				l.cells[y*l.w+x] = 1
			}
		}
	}
}
