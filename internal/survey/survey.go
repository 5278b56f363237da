// Package survey runs batches of random soups to their first repeated
// generation and summarises what they settle into.
package survey

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"life-trick/pkg/core"
	"life-trick/pkg/life"
)

// ErrInvalidParams reports survey parameters that cannot be run.
var ErrInvalidParams = errors.New("invalid survey params")

// Params selects the soups to run.
type Params struct {
	Width, Height  int
	BaseSeed       int64
	Count          int
	MaxGenerations int
	Workers        int
}

// Result describes one soup.
type Result struct {
	Seed       int64
	Cycled     bool
	Generation int
	Period     int
	Population int
	Visited    int
}

// Summary aggregates a survey.
type Summary struct {
	Results []Result
	// Periods counts cycled soups by period.
	Periods map[int]int
	Uncycled int
}

// Run evaluates Count soups with seeds BaseSeed, BaseSeed+1, ... across a
// pool of workers. Results are ordered by seed.
func Run(ctx context.Context, p Params) (Summary, error) {
	if err := p.Validate(); err != nil {
		return Summary{}, err
	}
	workers := p.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, p.Count)
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < p.Count; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = runSoup(p, p.BaseSeed+int64(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Results: results, Periods: map[int]int{}}
	for _, r := range results {
		if r.Cycled {
			sum.Periods[r.Period]++
		} else {
			sum.Uncycled++
		}
	}
	return sum, nil
}

// Validate rejects negative counts, dimensions, caps and worker counts.
// Zero dimensions are allowed and yield empty soups.
func (p Params) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("%w: count %d must not be negative", ErrInvalidParams, p.Count)
	case p.Width < 0 || p.Height < 0:
		return fmt.Errorf("%w: dimensions %dx%d must not be negative", ErrInvalidParams, p.Width, p.Height)
	case p.MaxGenerations < 0:
		return fmt.Errorf("%w: max generations %d must not be negative", ErrInvalidParams, p.MaxGenerations)
	case p.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidParams, p.Workers)
	}
	return nil
}

func runSoup(p Params, seed int64) Result {
	e := life.Random(p.Width, p.Height, core.NewRNG(seed))
	for !e.IsCycling() && (p.MaxGenerations <= 0 || e.Generation() < p.MaxGenerations) {
		e.Step()
	}
	return Result{
		Seed:       seed,
		Cycled:     e.IsCycling(),
		Generation: e.Generation(),
		Period:     e.Period(),
		Population: e.State().Population(),
		Visited:    e.VisitedCount(),
	}
}

// SortedPeriods returns the observed periods in ascending order.
func (s Summary) SortedPeriods() []int {
	out := make([]int, 0, len(s.Periods))
	for p := range s.Periods {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Slowest returns up to n results that took the most generations to settle.
// A non-positive n yields no results.
func (s Summary) Slowest(n int) []Result {
	all := append([]Result(nil), s.Results...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Generation > all[j].Generation })
	n = max(0, min(n, len(all)))
	return all[:n]
}
