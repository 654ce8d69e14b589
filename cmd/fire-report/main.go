// Command fire-report runs the wildfire automaton headless, logging the
// census every tick and optionally writing a burn chart and an AVI recording.
package main

import (
	"flag"
	"log"
	"os"

	"wildfire/internal/app"
	"wildfire/internal/render"
	"wildfire/internal/report"
	"wildfire/internal/sims/wildfire"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 500, "maximum ticks to simulate")
	chartPath := flag.String("chart", "", "write a PNG burn chart to this path")
	videoPath := flag.String("video", "", "write an MJPEG AVI recording to this path")
	fps := flag.Int("fps", 15, "frames per second of the recording")
	quiet := flag.Bool("quiet", false, "only log the final census")
	flag.Parse()

	if cfg.Prompt {
		prompter := app.NewPrompter(os.Stdin, os.Stdout)
		params, err := prompter.Params(cfg.Params)
		if err != nil {
			log.Fatalf("read parameters: %v", err)
		}
		cfg.Params = params
		if err := prompter.WaitForEnter(); err != nil {
			log.Fatalf("read start: %v", err)
		}
	}

	sim, err := wildfire.NewWithConfig(wildfire.Config{Size: cfg.Size, Seed: cfg.Seed, Params: cfg.Params})
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}

	var rec *report.Recorder
	if *videoPath != "" {
		side := cfg.Size * cfg.Scale
		rec, err = report.NewRecorder(*videoPath, side, side, *fps)
		if err != nil {
			log.Fatalf("open recording: %v", err)
		}
	}
	record := func() {
		if rec == nil {
			return
		}
		img := render.PaletteImage(sim.Cells(), cfg.Size, cfg.Size, sim.Palette(), cfg.Scale)
		if err := rec.AddFrame(img); err != nil {
			log.Fatalf("record tick %d: %v", sim.Tick(), err)
		}
	}

	counts := sim.Counts()
	history := []wildfire.Counts{counts}
	log.Printf("seed %d size %d p=%.3f pstart=%.3f wind=%.2f@%.0f water=%.3f",
		sim.Seed(), cfg.Size, cfg.Params.P, cfg.Params.PStart,
		cfg.Params.WindSpeed, cfg.Params.WindDirection, cfg.Params.WaterRatio)
	record()
	for sim.Tick() < *ticks {
		if counts.Active() == 0 && (cfg.Params.PStart <= 0 || counts.Flammable() == 0) {
			log.Printf("fire out after %d ticks", sim.Tick())
			break
		}
		sim.Step()
		counts = sim.Counts()
		history = append(history, counts)
		record()
		if !*quiet {
			log.Printf("tick %d: %s", sim.Tick(), counts)
		}
	}
	log.Printf("final tick %d: %s", sim.Tick(), counts)

	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Fatalf("close recording: %v", err)
		}
		log.Printf("wrote %d frames to %s", rec.Frames(), *videoPath)
	}

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			log.Fatalf("create chart: %v", err)
		}
		if err := report.WriteBurnChart(f, history, 0, 0); err != nil {
			f.Close()
			log.Fatalf("write chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close chart: %v", err)
		}
		log.Printf("wrote burn chart to %s", *chartPath)
	}
}
