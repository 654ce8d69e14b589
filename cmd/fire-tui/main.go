// Command fire-tui shows the wildfire automaton in a terminal using
// half-block characters, two grid rows per text row.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"wildfire/internal/app"
	"wildfire/internal/core"
	_ "wildfire/internal/sims/wildfire"
	"wildfire/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 96
	cfg.TPS = 10
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := term.NewViewer(screen, sim, cfg.TPS, cfg.Seed)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
