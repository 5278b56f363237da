// Package life implements Conway's Game of Life on a toroidal grid with
// detection of repeated generations.
//
// An Engine is not safe for concurrent use; callers sharing one must
// serialize every call.
package life

import "life-trick/pkg/core"

// Engine owns the current generation, its fixed dimensions and the record
// of every grid produced by stepping. The zero value is a 0×0 engine.
type Engine struct {
	state      Grid
	w, h       int
	visited    *visitedSet
	cycling    bool
	generation int
	period     int
}

// New returns an engine seeded with state. The grid is stored as-is and must
// have h rows of w columns.
func New(state Grid, w, h int) *Engine {
	return &Engine{state: state, w: w, h: h, visited: newVisitedSet()}
}

// NewChecked is New with a shape check on state.
func NewChecked(state Grid, w, h int) (*Engine, error) {
	if err := state.Validate(w, h); err != nil {
		return nil, err
	}
	return New(state, w, h), nil
}

// Random returns an engine whose cells are each drawn from src.
func Random(w, h int, src core.BoolSource) *Engine {
	state := make(Grid, h)
	for y := range state {
		row := make([]bool, w)
		for x := range row {
			row[x] = src.Bool()
		}
		state[y] = row
	}
	return New(state, w, h)
}

// State returns the current generation. Callers must not modify it.
func (e *Engine) State() Grid { return e.state }

// Size returns the engine dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// IsCycling reports whether a stepped-to grid has repeated. Once true it
// stays true.
func (e *Engine) IsCycling() bool { return e.cycling }

// Generation returns the number of steps taken.
func (e *Engine) Generation() int { return e.generation }

// Period returns the number of generations between the first repeated grid
// and its earlier occurrence, or 0 while the engine has not cycled.
func (e *Engine) Period() int { return e.period }

// VisitedCount returns how many distinct grids stepping has produced.
func (e *Engine) VisitedCount() int {
	if e.visited == nil {
		return 0
	}
	return e.visited.len()
}

// Step advances one generation, records it for cycle detection and returns
// it. The returned grid becomes the engine's current state.
func (e *Engine) Step() Grid {
	if e.visited == nil {
		e.visited = newVisitedSet()
	}

	next := make(Grid, e.h)
	for y := 0; y < e.h; y++ {
		row := make([]bool, e.w)
		for x := 0; x < e.w; x++ {
			row[x] = e.nextCell(Coord{X: x, Y: y})
		}
		next[y] = row
	}
	e.generation++

	sum := next.Hash()
	if first, seen := e.visited.lookup(next, sum); seen {
		if !e.cycling {
			e.period = e.generation - first
		}
		e.cycling = true
	} else {
		e.visited.insert(next.Clone(), sum, e.generation)
	}

	e.state = next
	return next
}

func (e *Engine) nextCell(c Coord) bool {
	n := e.liveNeighbors(c)
	if e.state.Alive(c) {
		return n == 2 || n == 3
	}
	return n == 3
}

func (e *Engine) liveNeighbors(c Coord) int {
	n := 0
	eachNeighbor(c, e.w, e.h, func(nb Coord) {
		if e.state.Alive(nb) {
			n++
		}
	})
	return n
}
