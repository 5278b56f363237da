//go:build ebiten

package main

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"life-trick/internal/app"
	"life-trick/internal/config"
	"life-trick/internal/trick"
)

func main() {
	configPath := pflag.String("config", "", "YAML config file")
	scale := pflag.Int("scale", 8, "pixel scale multiplier")
	defaults := config.Default()
	defaults.Bind(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Resolve(*configPath, pflag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}

	t := trick.New(trick.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))))
	if err := t.Setup(cfg); err != nil {
		log.Fatal(err)
	}

	game := app.New(t, *scale)
	size := t.Engine().Size()

	ebiten.SetWindowTitle("life-trick")
	ebiten.SetTPS(cfg.TPS())
	ebiten.SetWindowSize(size.W**scale, size.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
