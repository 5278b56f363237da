package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"life-trick/internal/config"
	"life-trick/internal/trick"
	"life-trick/pkg/core"
	"life-trick/pkg/life"
)

var (
	stepGenerations int
	stepUntilCycle  bool
)

func runStep(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg = cfg.ResolveSeed(config.RandomSeed)

	var e *life.Engine
	if cfg.Pattern != "" {
		g, err := trick.LoadPattern(cfg.Pattern, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		e = life.New(g, cfg.Width, cfg.Height)
	} else {
		e = life.Random(cfg.Width, cfg.Height, core.NewRNG(cfg.Seed))
	}

	out := cmd.OutOrStdout()
	if cfg.Pattern == "" {
		fmt.Fprintf(out, "seed %d\n", cfg.Seed)
	}
	fmt.Fprintf(out, "generation 0\n%s", e.State())
	for i := 0; i < stepGenerations; i++ {
		g := e.Step()
		fmt.Fprintf(out, "\ngeneration %d cycling=%v\n%s", e.Generation(), e.IsCycling(), g)
		if stepUntilCycle && e.IsCycling() {
			fmt.Fprintf(out, "\nrepeated generation %d (period %d)\n", e.Generation()-e.Period(), e.Period())
			break
		}
	}
	return nil
}
