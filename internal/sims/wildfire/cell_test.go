package wildfire

import (
	"strings"
	"testing"
)

func TestCellClassification(t *testing.T) {
	for _, c := range AllCells() {
		if !c.Valid() {
			t.Fatalf("%v reported invalid", c)
		}
		if c.Absorbing() && c.Flammable() {
			t.Fatalf("%v cannot be both absorbing and flammable", c)
		}
		if c.String() == "unknown" {
			t.Fatalf("cell %d has no name", uint8(c))
		}
	}
	if Cell(6).Valid() || Cell(6).String() != "unknown" {
		t.Fatal("out-of-range cell should be invalid and unnamed")
	}
	if !Water.Absorbing() || !Burned.Absorbing() || Burning.Absorbing() {
		t.Fatal("absorbing set must be exactly water and burned")
	}
	if DryGrass.VegetationFactor() != 1.5 || DenseTrees.VegetationFactor() != 0.5 || NormalForest.VegetationFactor() != 1 {
		t.Fatal("unexpected vegetation factors")
	}
}

func TestPaletteCoversEveryCell(t *testing.T) {
	pal := Palette()
	if len(pal) != len(AllCells()) {
		t.Fatalf("palette has %d entries, expected %d", len(pal), len(AllCells()))
	}
	seen := map[[3]uint8]Cell{}
	for _, c := range AllCells() {
		col := pal[c]
		if col.A != 255 {
			t.Fatalf("%v colour is not opaque", c)
		}
		key := [3]uint8{col.R, col.G, col.B}
		if other, dup := seen[key]; dup {
			t.Fatalf("%v shares its colour with %v", c, other)
		}
		seen[key] = c
	}
	if CellColor(Burning) != pal[Burning] {
		t.Fatal("CellColor and Palette disagree")
	}
}

func TestCountsHelpers(t *testing.T) {
	var c Counts
	c[NormalForest] = 4
	c[DryGrass] = 1
	c[DenseTrees] = 2
	c[Water] = 3
	c[Burning] = 5
	c[Burned] = 6
	if c.Total() != 21 || c.Flammable() != 7 || c.Active() != 5 {
		t.Fatalf("unexpected totals: %v", c)
	}
	if c.Of(Cell(99)) != 0 {
		t.Fatal("unknown cell should count zero")
	}
	if s := c.String(); !strings.Contains(s, "burning=5") || !strings.Contains(s, "dry-grass=1") {
		t.Fatalf("unexpected String output %q", s)
	}
}

func TestLegendMatchesCounts(t *testing.T) {
	sim, err := New(20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	counts := sim.Counts()
	legend := sim.Legend()
	if len(legend) != len(AllCells()) {
		t.Fatalf("expected %d legend entries, got %d", len(AllCells()), len(legend))
	}
	for i, c := range AllCells() {
		if legend[i].Label != c.String() || legend[i].Count != counts.Of(c) || legend[i].Color != CellColor(c) {
			t.Fatalf("legend entry %d = %+v does not describe %v", i, legend[i], c)
		}
	}
	speed, dir := sim.Wind()
	if speed != sim.Params().WindSpeed || dir != sim.Params().WindDirection {
		t.Fatalf("Wind() = %v,%v, expected params", speed, dir)
	}
}
