package life

type visitedEntry struct {
	grid       Grid
	generation int
}

// visitedSet records every distinct grid the engine has produced, keyed by
// structural hash with full equality checks inside each bucket.
type visitedSet struct {
	buckets map[uint64][]visitedEntry
	n       int
}

func newVisitedSet() *visitedSet {
	return &visitedSet{buckets: make(map[uint64][]visitedEntry)}
}

// lookup returns the generation at which g was first recorded.
func (s *visitedSet) lookup(g Grid, sum uint64) (int, bool) {
	for _, e := range s.buckets[sum] {
		if e.grid.Equal(g) {
			return e.generation, true
		}
	}
	return 0, false
}

func (s *visitedSet) insert(g Grid, sum uint64, generation int) {
	s.buckets[sum] = append(s.buckets[sum], visitedEntry{grid: g, generation: generation})
	s.n++
}

func (s *visitedSet) len() int { return s.n }
