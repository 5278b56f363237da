package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"life-trick/internal/metrics"
	"life-trick/internal/render"
	"life-trick/internal/trick"
	"life-trick/pkg/core"
)

var (
	metricsAddr string
	noDraw      bool
)

const clearScreen = "\x1b[H\x1b[2J"

func runTrick(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	t := trick.New(trick.WithLogger(logger), trick.WithMetrics(m))
	if err := t.Setup(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("serving metrics", "addr", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	loopDone := make(chan struct{})
	g.Go(func() error {
		defer close(loopDone)
		pace := core.NewFixedStep(cfg.TPS())
		out := cmd.OutOrStdout()
		for {
			if err := pace.Wait(ctx); err != nil {
				return nil
			}
			shown := t.Engine().Generation()
			frame, done := t.Update()
			if done {
				return nil
			}
			if noDraw {
				continue
			}
			fmt.Fprint(out, clearScreen)
			if err := render.WriteText(out, frame); err != nil {
				return err
			}
			e := t.Engine()
			fmt.Fprintf(out, "generation %d  cycling %v  period %d\n", shown, e.IsCycling(), e.Period())
		}
	})
	g.Go(func() error {
		<-loopDone
		stop()
		return nil
	})

	return g.Wait()
}
