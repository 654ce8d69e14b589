package wildfire

import (
	"runtime"
	"sync"
)

// ScenarioResult summarises one headless run.
type ScenarioResult struct {
	Params SimParams
	Seed   int64

	Ticks          int
	LastActiveTick int
	PeakBurning    int
	PeakTick       int

	Initial Counts
	Final   Counts
}

// BurnedFraction returns the share of initially combustible cells that ended
// up burned.
func (r ScenarioResult) BurnedFraction() float64 {
	fuel := r.Initial.Flammable() + r.Initial.Active()
	if fuel == 0 {
		return 0
	}
	return float64(r.Final.Of(Burned)) / float64(fuel)
}

// RunScenario simulates cfg for at most maxTicks steps. It stops early once
// nothing is burning and nothing can ignite on its own.
func RunScenario(cfg Config, maxTicks int) (ScenarioResult, error) {
	sim, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	res := ScenarioResult{
		Params:  cfg.Params,
		Seed:    cfg.Seed,
		Initial: sim.Counts(),
	}
	res.PeakBurning = res.Initial.Active()

	counts := res.Initial
	for step := 1; step <= maxTicks; step++ {
		if counts.Active() == 0 && (cfg.Params.PStart <= 0 || counts.Flammable() == 0) {
			break
		}
		sim.Step()
		counts = sim.Counts()
		res.Ticks = step
		if counts.Active() > 0 {
			res.LastActiveTick = step
		}
		if counts.Active() > res.PeakBurning {
			res.PeakBurning = counts.Active()
			res.PeakTick = step
		}
	}
	res.Final = counts
	return res, nil
}

// Sweep runs base once per parameter set on a pool of workers. Each run owns
// its grid and RNG, so results match a sequential run and are returned in the
// order of sets. The first error encountered is returned.
func Sweep(base Config, sets []SimParams, maxTicks, workers int) ([]ScenarioResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]ScenarioResult, len(sets))
	errs := make([]error, len(sets))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				cfg := base
				cfg.Params = sets[idx]
				results[idx], errs[idx] = RunScenario(cfg, maxTicks)
			}
		}()
	}
	for i := range sets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
