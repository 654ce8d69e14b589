package wildfire

import "testing"

func TestRunScenarioBurnsOutWithoutIgnition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Params = SimParams{P: 1, PStart: 0, WaterRatio: 0}

	res, err := RunScenario(cfg, 200)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if res.Final.Active() != 0 {
		t.Fatalf("expected the fire to burn out, %d still burning", res.Final.Active())
	}
	if res.Ticks != res.LastActiveTick+1 {
		t.Fatalf("expected the run to stop one tick after the last fire, ticks=%d last=%d", res.Ticks, res.LastActiveTick)
	}
	if res.LastActiveTick < 8 {
		t.Fatalf("fire cannot cross the grid in fewer than 8 ticks, got %d", res.LastActiveTick)
	}
	if res.Final.Of(Burned) < 16*16-1 {
		t.Fatalf("expected almost everything burned, got %d", res.Final.Of(Burned))
	}
	if res.BurnedFraction() < 0.99 {
		t.Fatalf("expected burned fraction near 1, got %f", res.BurnedFraction())
	}
	if res.PeakBurning <= 1 || res.PeakTick == 0 {
		t.Fatalf("expected a growing fire front, peak %d at %d", res.PeakBurning, res.PeakTick)
	}
}

func TestRunScenarioHonoursTickLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 32
	cfg.Params.PStart = 0.01

	res, err := RunScenario(cfg, 5)
	if err != nil {
		t.Fatalf("RunScenario: %v", err)
	}
	if res.Ticks != 5 {
		t.Fatalf("expected 5 ticks, got %d", res.Ticks)
	}
}

func TestSweepMatchesSequentialRuns(t *testing.T) {
	base := DefaultConfig()
	base.Size = 24
	sets := []SimParams{
		{P: 0.2, PStart: 0, WindSpeed: 0.5, WindDirection: 0, WaterRatio: 0.1},
		{P: 0.6, PStart: 0.001, WindSpeed: 1, WindDirection: 90, WaterRatio: 0.2},
		{P: 0.9, PStart: 0, WindSpeed: 0, WindDirection: 180, WaterRatio: 0},
		{P: 0.4, PStart: 0.01, WindSpeed: 0.3, WindDirection: 270, WaterRatio: 0.3},
	}

	got, err := Sweep(base, sets, 40, 3)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(got) != len(sets) {
		t.Fatalf("expected %d results, got %d", len(sets), len(got))
	}
	for i, params := range sets {
		cfg := base
		cfg.Params = params
		want, err := RunScenario(cfg, 40)
		if err != nil {
			t.Fatalf("RunScenario: %v", err)
		}
		if got[i] != want {
			t.Fatalf("sweep result %d differs from sequential run:\n%+v\n%+v", i, got[i], want)
		}
	}
}

func TestSweepReportsInvalidSets(t *testing.T) {
	base := DefaultConfig()
	base.Size = 8
	_, err := Sweep(base, []SimParams{{P: 0.5, WaterRatio: -1}}, 10, 0)
	if err == nil {
		t.Fatal("expected invalid water ratio to fail the sweep")
	}
}
