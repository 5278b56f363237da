package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"life-trick/internal/config"
)

var (
	configPath string
	logLevel   string
	flagConfig = config.Default()

	rootCmd = &cobra.Command{
		Use:           "life",
		Short:         "Conway's Game of Life on a torus, with cycle detection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Animate a soup in the terminal until it has been cycling for a while",
		RunE:  runTrick,
	}

	stepCmd = &cobra.Command{
		Use:   "step",
		Short: "Print successive generations of a pattern or soup",
		RunE:  runStep,
	}

	surveyCmd = &cobra.Command{
		Use:   "survey",
		Short: "Run many random soups to their first repeated generation",
		RunE:  runSurvey,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	for _, cmd := range []*cobra.Command{runCmd, stepCmd} {
		cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
		flagConfig.Bind(cmd.Flags())
	}

	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	runCmd.Flags().BoolVar(&noDraw, "no-draw", false, "do not draw frames")

	stepCmd.Flags().IntVarP(&stepGenerations, "generations", "n", 10, "generations to print")
	stepCmd.Flags().BoolVar(&stepUntilCycle, "until-cycle", false, "stop at the first repeated generation")

	surveyCmd.Flags().IntVar(&surveyParams.Width, "width", 32, "grid width in cells")
	surveyCmd.Flags().IntVar(&surveyParams.Height, "height", 32, "grid height in cells")
	surveyCmd.Flags().Int64Var(&surveyParams.BaseSeed, "seed", 1, "first seed")
	surveyCmd.Flags().IntVar(&surveyParams.Count, "count", 100, "number of soups")
	surveyCmd.Flags().IntVar(&surveyParams.MaxGenerations, "max-generations", 10000, "give up on a soup after this many generations")
	surveyCmd.Flags().IntVar(&surveyParams.Workers, "workers", 0, "worker goroutines (0 = one per CPU)")
	surveyCmd.Flags().IntVar(&surveyTop, "top", 5, "list the slowest soups")

	rootCmd.AddCommand(runCmd, stepCmd, surveyCmd)
}

func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Resolve(configPath, cmd.Flags())
}
