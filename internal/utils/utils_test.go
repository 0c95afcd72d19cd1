package utils

import (
	"math"
	"testing"
)

func TestRangeBounds(t *testing.T) {
	rng := NewPRNGService(42)
	for i := 0; i < 10000; i++ {
		v := rng.Range(-30, 70)
		if v < -30 || v >= 70 {
			t.Fatalf("Range(-30, 70) = %f out of bounds", v)
		}
		f := rng.FloorRange(0, 640)
		if f != math.Floor(f) || f < 0 || f >= 640 {
			t.Fatalf("FloorRange(0, 640) = %f", f)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := rng.IntRange(4, 7)
		if n < 4 || n > 7 {
			t.Fatalf("IntRange(4, 7) = %d", n)
		}
		seen[n] = true
	}
	for n := 4; n <= 7; n++ {
		if !seen[n] {
			t.Errorf("value %d never drawn", n)
		}
	}
}

func TestDegenerateRanges(t *testing.T) {
	rng := NewPRNGService(1)
	if v := rng.Range(5, 5); v != 5 {
		t.Errorf("Range(5, 5) = %f, want 5", v)
	}
	if n := rng.IntRange(3, 3); n != 3 {
		t.Errorf("IntRange(3, 3) = %d, want 3", n)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 50; i++ {
		if a.Range(0, 1) != b.Range(0, 1) {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestVecFromAngle(t *testing.T) {
	v := VecFromAngle(0)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Fatalf("VecFromAngle(0) = %+v, want (0, 1)", v)
	}
	v = VecFromAngle(math.Pi / 2)
	if math.Abs(v.X-1) > 1e-12 || math.Abs(v.Y) > 1e-12 {
		t.Fatalf("VecFromAngle(pi/2) = %+v, want (1, 0)", v)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3pi) = %f", got)
	}
	if got := NormalizeAngle(-math.Pi / 2); got != -math.Pi/2 {
		t.Errorf("NormalizeAngle(-pi/2) = %f", got)
	}
	if got := RadToDeg(math.Pi); got != 180 {
		t.Errorf("RadToDeg(pi) = %f", got)
	}
}
