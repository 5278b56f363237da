package life

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

// Has reports whether c is in the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Neighbors returns the eight toroidally wrapped cells surrounding c on a
// w×h grid. On 1-wide or 1-tall grids several offsets land on the same cell
// and the set holds fewer than eight entries.
func Neighbors(c Coord, w, h int) CoordSet {
	s := make(CoordSet, 8)
	eachNeighbor(c, w, h, func(n Coord) { s[n] = struct{}{} })
	return s
}

// eachNeighbor calls fn once for every distinct coordinate in
// Neighbors(c, w, h) without allocating.
func eachNeighbor(c Coord, w, h int, fn func(Coord)) {
	var xs, ys [3]int
	nx := uniq(&xs, (c.X+w-1)%w, c.X, (c.X+1)%w)
	ny := uniq(&ys, (c.Y+h-1)%h, c.Y, (c.Y+1)%h)

	// c itself is a neighbour only when a non-zero offset wraps onto it.
	selfReached := (c.X+1)%w == c.X || (c.Y+1)%h == c.Y || (c.X+w-1)%w == c.X || (c.Y+h-1)%h == c.Y

	for _, y := range ys[:ny] {
		for _, x := range xs[:nx] {
			if x == c.X && y == c.Y && !selfReached {
				continue
			}
			fn(Coord{X: x, Y: y})
		}
	}
}

// uniq stores the distinct values of prev, cur, next in out and returns how
// many there are.
func uniq(out *[3]int, prev, cur, next int) int {
	out[0] = cur
	n := 1
	for _, v := range [2]int{prev, next} {
		dup := false
		for _, seen := range out[:n] {
			if seen == v {
				dup = true
				break
			}
		}
		if !dup {
			out[n] = v
			n++
		}
	}
	return n
}
