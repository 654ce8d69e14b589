package report

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"wildfire/internal/render"
	"wildfire/internal/sims/wildfire"
)

func burnHistory(t *testing.T, ticks int) []wildfire.Counts {
	t.Helper()
	sim, err := wildfire.New(16)
	if err != nil {
		t.Fatalf("wildfire.New: %v", err)
	}
	history := []wildfire.Counts{sim.Counts()}
	for i := 0; i < ticks; i++ {
		sim.Step()
		history = append(history, sim.Counts())
	}
	return history
}

func TestWriteBurnChartProducesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBurnChart(&buf, burnHistory(t, 10), 320, 200); err != nil {
		t.Fatalf("WriteBurnChart: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode chart: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Fatalf("chart is %dx%d, expected 320x200", b.Dx(), b.Dy())
	}
}

func TestWriteBurnChartRejectsShortHistory(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBurnChart(&buf, burnHistory(t, 0), 320, 200)
	if !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("expected ErrTooFewSamples, got %v", err)
	}
	err = WriteBurnChart(&buf, make([]wildfire.Counts, 3), 320, 200)
	if !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("expected ErrEmptyGrid, got %v", err)
	}
}

func TestRecorderWritesAVI(t *testing.T) {
	sim, err := wildfire.New(16)
	if err != nil {
		t.Fatalf("wildfire.New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "run.avi")
	rec, err := NewRecorder(path, 32, 32, 10)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for i := 0; i < 3; i++ {
		img := render.PaletteImage(sim.Cells(), 16, 16, sim.Palette(), 2)
		if err := rec.AddFrame(img); err != nil {
			t.Fatalf("AddFrame: %v", err)
		}
		sim.Step()
	}
	if rec.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", rec.Frames())
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := rec.AddFrame(nil); !errors.Is(err, ErrRecorderClosed) {
		t.Fatalf("expected ErrRecorderClosed, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read video: %v", err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatalf("output is not an AVI file")
	}
}

func TestNewRecorderRejectsBadGeometry(t *testing.T) {
	if _, err := NewRecorder(filepath.Join(t.TempDir(), "x.avi"), 0, 10, 10); err == nil {
		t.Fatal("expected error for zero width")
	}
}
