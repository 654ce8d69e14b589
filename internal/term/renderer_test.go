package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var testPalette = []color.RGBA{
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// rowsGrid returns a w×h grid whose row y holds value y.
func rowsGrid(w, h int) []uint8 {
	cells := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = uint8(y % len(testPalette))
		}
	}
	return cells
}

func TestDrawPacksTwoRowsPerLine(t *testing.T) {
	s := newTestScreen(t, 4, 3)
	r := NewRenderer(s, testPalette)
	r.Draw(rowsGrid(4, 4), 4, 4)

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			ch, _, style, _ := s.GetContent(col, row)
			if ch != halfBlock {
				t.Fatalf("(%d,%d) rune %q, expected half block", col, row, ch)
			}
			fg, bg, _ := style.Decompose()
			if fg != rgb(testPalette[row*2]) || bg != rgb(testPalette[row*2+1]) {
				t.Fatalf("(%d,%d) colours fg=%v bg=%v", col, row, fg, bg)
			}
		}
	}
}

func TestDrawBlanksBeyondGrid(t *testing.T) {
	s := newTestScreen(t, 6, 4)
	r := NewRenderer(s, testPalette)
	r.Draw(rowsGrid(3, 3), 3, 3)

	if ch, _, _, _ := s.GetContent(4, 0); ch != ' ' {
		t.Fatalf("expected blank past the grid width, got %q", ch)
	}
	_, _, style, _ := s.GetContent(0, 1)
	if _, bg, _ := style.Decompose(); bg != tcell.ColorBlack {
		t.Fatalf("odd last row should have a black lower half, got %v", bg)
	}
	if ch, _, _, _ := s.GetContent(0, 2); ch != ' ' {
		t.Fatalf("expected blank past the grid height, got %q", ch)
	}
}

func TestPanClampsToGrid(t *testing.T) {
	s := newTestScreen(t, 4, 3)
	r := NewRenderer(s, testPalette)
	r.Pan(100, 100, 10, 10)
	if x, y := r.Offset(); x != 6 || y != 6 {
		t.Fatalf("expected offset (6,6), got (%d,%d)", x, y)
	}
	r.Pan(-100, -100, 10, 10)
	if x, y := r.Offset(); x != 0 || y != 0 {
		t.Fatalf("expected offset (0,0), got (%d,%d)", x, y)
	}

	r.Pan(2, 1, 10, 10)
	r.Draw(rowsGrid(10, 10), 10, 10)
	_, _, style, _ := s.GetContent(0, 0)
	if fg, _, _ := style.Decompose(); fg != rgb(testPalette[1]) {
		t.Fatalf("panned view should start at grid row 1, got fg %v", fg)
	}
}

func TestDrawStatusTruncates(t *testing.T) {
	s := newTestScreen(t, 5, 2)
	r := NewRenderer(s, testPalette)
	r.DrawStatus("abcdefgh")
	for col, want := range "abcde" {
		if ch, _, _, _ := s.GetContent(col, 1); ch != want {
			t.Fatalf("status col %d = %q, expected %q", col, ch, want)
		}
	}
}
