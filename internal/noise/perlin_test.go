package noise

import (
	"math/rand"
	"testing"
)

// Noise values must always land in [0, 1] no matter the dimension.
func TestPerlinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewPerlin(rng, 4, 4)
	for i := 0; i < 1000; i++ {
		x := rng.Float64()
		y := rng.Float64()
		n := p.At(x, y)
		if n < 0 || n > 1 {
			t.Fatalf("noise at (%v, %v) out of range: %v", x, y, n)
		}
	}
}

// The same seed must reproduce the same noise field exactly.
func TestPerlinDeterminism(t *testing.T) {
	a := NewPerlin(rand.New(rand.NewSource(7)), 3, 5)
	b := NewPerlin(rand.New(rand.NewSource(7)), 3, 5)
	for i := 0; i < 100; i++ {
		x := float64(i%10) / 10
		y := float64(i/10) / 10
		if got, want := a.At(x, y), b.At(x, y); got != want {
			t.Fatalf("seeded noise diverged at (%v, %v): %v != %v", x, y, got, want)
		}
	}
}

func TestPerlinSmoothness(t *testing.T) {
	p := NewPerlin(rand.New(rand.NewSource(3)), 2)
	// Neighbouring samples far from grid lines should stay close.
	prev := p.At(0.1)
	for x := 0.101; x < 0.2; x += 0.001 {
		cur := p.At(x)
		if diff := cur - prev; diff > 0.05 || diff < -0.05 {
			t.Fatalf("noise jumped by %v between adjacent samples near %v", diff, x)
		}
		prev = cur
	}
}

func TestDiscreteRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	d := NewDiscrete(rng, []int{30, 20}, 4, 3)
	for x := 0; x < 30; x++ {
		for y := 0; y < 20; y++ {
			n := d.At(x, y)
			if n < 0 || n > 1 {
				t.Fatalf("discrete noise at (%d, %d) out of range: %v", x, y, n)
			}
		}
	}
}

func TestDiscreteDeterminism(t *testing.T) {
	a := NewDiscrete(rand.New(rand.NewSource(5)), []int{16, 16}, 3, 2)
	b := NewDiscrete(rand.New(rand.NewSource(5)), []int{16, 16}, 3, 2)
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("seeded discrete noise diverged at (%d, %d)", x, y)
			}
		}
	}
}

func TestDiscreteRejectsZeroOctaves(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero octaves")
		}
	}()
	NewDiscrete(rand.New(rand.NewSource(1)), []int{4}, 2, 0)
}
