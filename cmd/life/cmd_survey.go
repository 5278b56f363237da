package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"life-trick/internal/survey"
)

var (
	surveyParams survey.Params
	surveyTop    int
)

func runSurvey(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Surveying %d soups of %dx%d\n", surveyParams.Count, surveyParams.Width, surveyParams.Height)

	start := time.Now()
	sum, err := survey.Run(cmd.Context(), surveyParams)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nPeriods (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, p := range sum.SortedPeriods() {
		fmt.Fprintf(out, "  p%-4d %d\n", p, sum.Periods[p])
	}
	if sum.Uncycled > 0 {
		fmt.Fprintf(out, "  uncycled after %d generations: %d\n", surveyParams.MaxGenerations, sum.Uncycled)
	}

	fmt.Fprintf(out, "\nSlowest %d:\n", surveyTop)
	for i, r := range sum.Slowest(surveyTop) {
		fmt.Fprintf(out, "%2d) seed=%d generation=%d period=%d population=%d visited=%d\n",
			i+1, r.Seed, r.Generation, r.Period, r.Population, r.Visited)
	}
	return nil
}
