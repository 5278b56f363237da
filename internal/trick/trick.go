// Package trick drives a life engine on behalf of a frame-based host: it is
// set up once, then asked for one frame per tick until it reports done.
package trick

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"life-trick/internal/config"
	"life-trick/internal/metrics"
	"life-trick/internal/render"
	"life-trick/pkg/core"
	"life-trick/pkg/life"
	simlife "life-trick/pkg/sims/life"
)

// Trick owns one engine and the countdown that ends a stale run.
type Trick struct {
	cfg     config.Config
	sim     *simlife.Life
	session string

	staleLeft int
	stale     bool
	done      bool

	seeds   func() int64
	base    *slog.Logger
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Trick.
type Option func(*Trick)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Trick) { t.base = l }
}

// WithSeedSource supplies seeds for configs that leave Seed at zero.
// Defaults to config.RandomSeed.
func WithSeedSource(next func() int64) Option {
	return func(t *Trick) { t.seeds = next }
}

// WithMetrics reports progress to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Trick) { t.metrics = m }
}

// New returns a trick with an empty engine; call Setup before Update.
func New(opts ...Option) *Trick {
	t := &Trick{sim: simlife.Wrap(&life.Engine{}), base: slog.Default(), seeds: config.RandomSeed}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.base
	return t
}

// Setup validates cfg and starts a fresh run from a random soup, or from
// cfg.Pattern when set.
func (t *Trick) Setup(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg = cfg.ResolveSeed(t.seeds)
	if cfg.Pattern == "" {
		sim := simlife.New(cfg.Width, cfg.Height)
		sim.Reset(cfg.Seed)
		t.start(cfg, sim)
		return nil
	}

	g, err := LoadPattern(cfg.Pattern, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	t.start(cfg, simlife.FromGrid(g, cfg.Width, cfg.Height))
	return nil
}

// LoadPattern reads a plaintext pattern file and centres it on a w×h board.
func LoadPattern(path string, w, h int) (life.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p, err := life.ParsePattern(string(data))
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", path, err)
	}
	return life.Place(p, w, h), nil
}

// SetupEngine starts a run from an already constructed engine.
func (t *Trick) SetupEngine(cfg config.Config, engine *life.Engine) {
	t.start(cfg, simlife.Wrap(engine))
}

func (t *Trick) start(cfg config.Config, sim *simlife.Life) {
	t.cfg = cfg
	t.sim = sim
	t.session = uuid.NewString()
	t.staleLeft = cfg.StaleFrames()
	t.stale = false
	t.done = false
	t.log = t.base.With("session", t.session)

	t.log.Info("starting life trick", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed, "pattern", cfg.Pattern)
	t.log.Debug("stale countdown", "frames", t.staleLeft)
	if t.metrics != nil {
		t.metrics.StaleFrames.Set(float64(t.staleLeft))
		t.metrics.Cycling.Set(0)
		t.metrics.Period.Set(0)
		t.metrics.VisitedStates.Set(0)
	}
}

// Update returns the frame for the current generation and then advances the
// engine. Once the simulation has been stale for the configured number of
// frames it returns nil and true.
func (t *Trick) Update() (render.Frame, bool) {
	if t.done {
		return nil, true
	}

	frame := render.ColorMap(t.sim.Engine().State(), render.LiveColor, render.DeadColor)
	t.sim.Step()
	t.observe()

	if t.stale && t.staleLeft == 0 {
		t.done = true
		t.log.Info("life trick finished", "generation", t.sim.Engine().Generation())
		return nil, true
	}
	if t.stale {
		t.staleLeft--
	}
	if t.metrics != nil {
		t.metrics.Frames.Inc()
		t.metrics.StaleFrames.Set(float64(t.staleLeft))
	}
	return frame, false
}

func (t *Trick) observe() {
	e := t.sim.Engine()
	if t.metrics != nil {
		t.metrics.Generations.Inc()
		t.metrics.VisitedStates.Set(float64(e.VisitedCount()))
	}
	if t.stale {
		return
	}
	switch {
	case e.IsCycling():
		t.stale = true
		t.log.Info("cycle detected", "generation", e.Generation(), "period", e.Period())
		if t.metrics != nil {
			t.metrics.Cycling.Set(1)
			t.metrics.Period.Set(float64(e.Period()))
		}
	case t.cfg.MaxGenerations > 0 && e.Generation() >= t.cfg.MaxGenerations:
		t.stale = true
		t.log.Info("generation cap reached", "generation", e.Generation(), "visited", e.VisitedCount())
	}
}

// Engine exposes the running engine.
func (t *Trick) Engine() *life.Engine { return t.sim.Engine() }

// Sim exposes the run as a core.Sim whose cells track the latest generation.
func (t *Trick) Sim() core.Sim { return t.sim }

// Config returns the configuration of the current run.
func (t *Trick) Config() config.Config { return t.cfg }

// Session identifies the current run in logs.
func (t *Trick) Session() string { return t.session }

// Done reports whether the run has finished.
func (t *Trick) Done() bool { return t.done }
