package life

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrMalformedGrid reports a grid whose shape does not match its declared
// dimensions.
var ErrMalformedGrid = errors.New("life: malformed grid")

// Grid holds one generation indexed [row][column].
type Grid [][]bool

// NewGrid allocates an all-dead grid with h rows of w columns.
func NewGrid(w, h int) Grid {
	g := make(Grid, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns of the first row, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Alive reports the state of the cell at c.
func (g Grid) Alive(c Coord) bool { return g[c.Y][c.X] }

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and identical cells.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Hash digests the row count, then each row's length followed by its cells
// packed eight to a byte. Grids that are Equal hash identically.
func (g Grid) Hash() uint64 {
	d := xxhash.New()
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(len(g)))
	_, _ = d.Write(hdr[:])
	for _, row := range g {
		binary.LittleEndian.PutUint64(hdr[:], uint64(len(row)))
		_, _ = d.Write(hdr[:])
		packed := make([]byte, (len(row)+7)/8)
		for x, cell := range row {
			if cell {
				packed[x/8] |= 1 << (x % 8)
			}
		}
		_, _ = d.Write(packed)
	}
	return d.Sum64()
}

// Validate checks that the grid has exactly h rows of exactly w columns.
func (g Grid) Validate(w, h int) error {
	if len(g) != h {
		return fmt.Errorf("%w: %d rows, want %d", ErrMalformedGrid, len(g), h)
	}
	for y, row := range g {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGrid, y, len(row), w)
		}
	}
	return nil
}

// String renders live cells as 'O' and dead cells as '.', one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, cell := range row {
			if cell {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
