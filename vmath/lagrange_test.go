package vmath

import (
	"math"
	"testing"
)

func TestLagrangeEmptySet(t *testing.T) {
	for _, q := range []float64{-100, 0, 3.5, 1e9} {
		if got := Lagrange(q, nil); got != 0 {
			t.Errorf("Lagrange(%v, nil) = %v, want 0", q, got)
		}
		if got := Lagrange(q, []Sample{}); got != 0 {
			t.Errorf("Lagrange(%v, []) = %v, want 0", q, got)
		}
	}
}

func TestLagrangeQuadraticThroughThreePoints(t *testing.T) {
	samples := []Sample{{0, 0}, {5, 10}, {10, 0}}
	if got := Lagrange(5, samples); got != 10 {
		t.Errorf("Lagrange(5) = %v, want 10", got)
	}
	// y = -0.4x^2 + 4x
	if got, want := Lagrange(2, samples), -0.4*4+8; math.Abs(got-want) > 1e-9 {
		t.Errorf("Lagrange(2) = %v, want %v", got, want)
	}
}

func TestLagrangeReproducesNodes(t *testing.T) {
	sets := [][]Sample{
		{{1, 7}},
		{{-3, 2}, {4, -1}},
		{{750, 300}, {1490, 120}, {1200, 560}, {33, 17}, {900, 0}},
		{{0.5, 1}, {1.5, -2}, {2.5, 3}, {3.5, -4}},
	}
	for si, samples := range sets {
		for _, s := range samples {
			got := Lagrange(s.X, samples)
			if math.Abs(got-s.Y) > 1e-6*math.Max(1, math.Abs(s.Y)) {
				t.Errorf("set %d: Lagrange(%v) = %v, want %v", si, s.X, got, s.Y)
			}
		}
	}
}

func TestLagrangeCoincidentPositions(t *testing.T) {
	// Two nodes at x=2: neither divides the other, both contribute
	samples := []Sample{{2, 3}, {2, 5}}
	got := Lagrange(2, samples)
	if got != 8 {
		t.Errorf("coincident nodes: got %v, want 8", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatal("coincident nodes produced non-finite result")
	}

	// Mixed: third node distinct
	mixed := []Sample{{0, 1}, {0, 1}, {4, 9}}
	if v := Lagrange(1, mixed); math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("mixed coincident set not finite: %v", v)
	}
}

func TestLagrangeSingleSampleIsConstant(t *testing.T) {
	samples := []Sample{{10, 42}}
	for _, q := range []float64{-5, 0, 10, 999} {
		if got := Lagrange(q, samples); got != 42 {
			t.Errorf("Lagrange(%v) = %v, want 42", q, got)
		}
	}
}
