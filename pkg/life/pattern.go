package life

import (
	"bufio"
	"fmt"
	"strings"
)

// ParsePattern reads a pattern in the Life "plaintext" format: lines starting
// with '!' are comments, 'O' or '*' marks a live cell and any other rune a
// dead one. Short rows are padded with dead cells to the widest row.
func ParsePattern(text string) (Grid, error) {
	var rows [][]bool
	width := 0
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			row = append(row, r == 'O' || r == '*')
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: pattern has no rows", ErrMalformedGrid)
	}

	g := NewGrid(width, len(rows))
	for y, row := range rows {
		copy(g[y], row)
	}
	return g, nil
}

// Place centres pattern on an all-dead w×h grid. Cells that fall outside the
// grid wrap around its edges.
func Place(pattern Grid, w, h int) Grid {
	g := NewGrid(w, h)
	if w == 0 || h == 0 {
		return g
	}
	offX := (w - pattern.Width()) / 2
	offY := (h - pattern.Height()) / 2
	for y, row := range pattern {
		for x, cell := range row {
			if !cell {
				continue
			}
			gx := ((x+offX)%w + w) % w
			gy := ((y+offY)%h + h) % h
			g[gy][gx] = true
		}
	}
	return g
}
