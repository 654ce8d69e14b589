package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"wildfire/internal/sims/wildfire"
)

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 128, "grid edge length in cells")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	top := flag.Int("top", 10, "number of results to print")
	flag.Parse()

	base := wildfire.DefaultConfig()
	base.Size = *size
	base.Seed = *seed

	spreadOptions := []float64{0.4, 0.6, 0.8, 1.0}
	windSpeedOptions := []float64{0, 0.5, 1.0}
	windDirOptions := []float64{0, 90, 180, 270}
	pstartOptions := []float64{0, 0.01}

	var sets []wildfire.SimParams
	for _, p := range spreadOptions {
		for _, ws := range windSpeedOptions {
			for _, wd := range windDirOptions {
				for _, ps := range pstartOptions {
					params := base.Params
					params.P = p
					params.WindSpeed = ws
					params.WindDirection = wd
					params.PStart = ps
					sets = append(sets, params)
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %dx%d grid)\n",
		len(sets), *workers, *steps, *size, *size)

	start := time.Now()
	results, err := wildfire.Sweep(base, sets, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].BurnedFraction() > results[j].BurnedFraction()
	})

	fmt.Printf("Completed in %s\n", elapsed.Round(time.Millisecond))
	for i, res := range results {
		if i >= *top {
			break
		}
		p := res.Params
		fmt.Printf("%2d. burned=%5.1f%% peak=%d@%d last=%d p=%.2f pstart=%.3f wind=%.2f@%.0f\n",
			i+1, res.BurnedFraction()*100, res.PeakBurning, res.PeakTick, res.LastActiveTick,
			p.P, p.PStart, p.WindSpeed, p.WindDirection)
	}
}
