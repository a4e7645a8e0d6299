package geometry

import "testing"

func TestSpanShiftIntoViewNoop(t *testing.T) {
	s := NewSpan(0, 19)

	// Point already has the margin on both sides.
	if got := s.ShiftIntoView(10, 3); got != s {
		t.Errorf("Expected no-op, got %v", got)
	}
}

func TestSpanShiftIntoViewLeft(t *testing.T) {
	s := NewSpan(10, 29)

	// Point left of the span entirely; must shift left until margin holds.
	got := s.ShiftIntoView(8, 3)
	if got.Width() != s.Width() {
		t.Errorf("Width changed: %d -> %d", s.Width(), got.Width())
	}
	if got.Lo != 5 {
		t.Errorf("Expected Lo=5, got %d", got.Lo)
	}
	if 8-got.Lo < 3 || got.Hi-8 < 3 {
		t.Errorf("Margin violated: %v around 8", got)
	}
}

func TestSpanShiftIntoViewRight(t *testing.T) {
	s := NewSpan(0, 19)

	got := s.ShiftIntoView(18, 4)
	if got.Width() != s.Width() {
		t.Errorf("Width changed: %d -> %d", s.Width(), got.Width())
	}
	if got.Hi != 22 {
		t.Errorf("Expected Hi=22, got %d", got.Hi)
	}
}

// Property from the contract: for any point and margin < width/2, the result
// contains the point with at least margin cells free on both sides, and the
// width never changes.
func TestSpanShiftIntoViewProperty(t *testing.T) {
	s := NewSpan(5, 44) // width 40

	for p := -10; p <= 60; p++ {
		for margin := 0; margin < 20; margin++ {
			got := s.ShiftIntoView(p, margin)

			if got.Width() != s.Width() {
				t.Fatalf("p=%d margin=%d: width changed %d -> %d",
					p, margin, s.Width(), got.Width())
			}
			if p-got.Lo < margin || got.Hi-p < margin {
				t.Fatalf("p=%d margin=%d: margin violated by %v", p, margin, got)
			}
		}
	}
}

func TestSpanScale(t *testing.T) {
	s := NewSpan(0, 9) // width 10

	// Pivot in the middle keeps roughly centered.
	got := s.Scale(20, 5)
	if got.Width() != 20 {
		t.Errorf("Expected width 20, got %d", got.Width())
	}
	if !got.Contains(5) {
		t.Errorf("Pivot must stay inside: %v", got)
	}

	// Pivot left of center: near side rounds up.
	got = s.Scale(5, 2)
	if got.Width() != 5 {
		t.Errorf("Expected width 5, got %d", got.Width())
	}
	if !got.Contains(2) {
		t.Errorf("Pivot must stay inside: %v", got)
	}
}

// The near side must round up even when the left share is a hair above an
// integer; truncation would put the pivot on the very edge instead.
func TestSpanScaleRoundsTinyNearShareUp(t *testing.T) {
	s := NewSpan(0, 3000000) // left share of the pivot is ~6.7e-7 cells

	got := s.Scale(2, 1)
	if got.Lo != 0 {
		t.Errorf("Expected Lo=0, got %v", got)
	}
	if !got.Contains(1) {
		t.Errorf("Pivot must stay inside: %v", got)
	}
}

func TestSpanScalePivotStaysInside(t *testing.T) {
	s := NewSpan(10, 49)

	for pivot := 10; pivot <= 49; pivot++ {
		for width := 1; width <= 60; width += 7 {
			got := s.Scale(width, pivot)
			if got.Width() != width {
				t.Fatalf("pivot=%d width=%d: got width %d", pivot, width, got.Width())
			}
			if !got.Contains(pivot) {
				t.Fatalf("pivot=%d width=%d: pivot outside %v", pivot, width, got)
			}
		}
	}
}
