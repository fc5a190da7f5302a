package core

import (
	"testing"
	"time"
)

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("identically seeded RNGs diverged at draw %d", i)
		}
	}
	c, d := NewRNG(7), NewRNG(8)
	same := true
	for i := 0; i < 10; i++ {
		if c.Float64() != d.Float64() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical draws")
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, outside [0, 1)", v)
		}
	}
}

func TestFixedStepFiresImmediately(t *testing.T) {
	fs := NewFixedStep(30)
	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep did not fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second ShouldStep fired with no elapsed time")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.ShouldStep()
	time.Sleep(2 * fs.Interval())
	if !fs.ShouldStep() {
		t.Fatal("ShouldStep did not fire after a full interval elapsed")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations were accepted")
	}
}
