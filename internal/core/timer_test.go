package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs := NewFixedStep(10)
	if !fs.ShouldStep() {
		t.Fatal("expected the primed accumulator to allow an immediate step")
	}
	if fs.ShouldStep() {
		t.Fatal("expected no second step without elapsed time")
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("expected 60 TPS fallback, got %v", fs.step)
	}
	fs.SetTPS(-5)
	if fs.step != time.Second/60 {
		t.Fatalf("expected SetTPS fallback to 60 TPS, got %v", fs.step)
	}
	fs.SetTPS(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("expected 250ms interval, got %v", fs.Interval())
	}
}
