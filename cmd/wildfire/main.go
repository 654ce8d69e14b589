//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"wildfire/internal/app"
	"wildfire/internal/core"
	_ "wildfire/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Prompt {
		prompter := app.NewPrompter(os.Stdin, os.Stdout)
		params, err := prompter.Params(cfg.Params)
		if err != nil {
			log.Fatalf("read parameters: %v", err)
		}
		cfg.Params = params
	}

	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("Wildfire Simulation - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("press Enter in the window to start the fire")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
