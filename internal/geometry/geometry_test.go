package geometry

import "testing"

func TestPointStep(t *testing.T) {
	p := Point{X: 3, Y: 3}

	cases := []struct {
		dir      Direction
		expected Point
	}{
		{Up, Point{3, 2}},
		{Down, Point{3, 4}},
		{Left, Point{2, 3}},
		{Right, Point{4, 3}},
		{UpLeft, Point{2, 2}},
		{DownRight, Point{4, 4}},
	}

	for _, c := range cases {
		if got := p.Step(c.dir); got != c.expected {
			t.Errorf("Step(%s): expected %v, got %v", c.dir, c.expected, got)
		}
	}
}

func TestPointNeighbors(t *testing.T) {
	n := Point{X: 0, Y: 0}.Neighbors()
	if len(n) != 8 {
		t.Fatalf("Expected 8 neighbors, got %d", len(n))
	}

	// Neighbors may lie outside any map; the caller filters.
	seen := make(map[Point]bool)
	for _, p := range n {
		if p == (Point{0, 0}) {
			t.Error("Point must not be its own neighbor")
		}
		if seen[p] {
			t.Errorf("Duplicate neighbor %v", p)
		}
		seen[p] = true
	}
}

func TestNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for negative size")
		}
	}()
	NewSize(-1, 5)
}

func TestRectangleEdges(t *testing.T) {
	// A 5x3 rectangle at (2, 4); edges are inclusive.
	r := NewSize(5, 3).ToRect(Point{X: 2, Y: 4})

	if r.Left() != 2 || r.Right() != 6 {
		t.Errorf("Expected x-edges 2..6, got %d..%d", r.Left(), r.Right())
	}
	if r.Top() != 4 || r.Bottom() != 6 {
		t.Errorf("Expected y-edges 4..6, got %d..%d", r.Top(), r.Bottom())
	}
	if r.Area() != 15 {
		t.Errorf("Expected area 15, got %d", r.Area())
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewSize(3, 3).ToRect(Point{X: 1, Y: 1})

	for _, p := range []Point{{1, 1}, {3, 3}, {2, 2}} {
		if !r.Contains(p) {
			t.Errorf("Expected %v inside %v", p, r)
		}
	}
	for _, p := range []Point{{0, 1}, {4, 2}, {2, 0}, {2, 4}} {
		if r.Contains(p) {
			t.Errorf("Expected %v outside %v", p, r)
		}
	}
}

func TestRectangleOverlaps(t *testing.T) {
	a := NewSize(3, 3).ToRect(Point{X: 0, Y: 0})
	b := NewSize(3, 3).ToRect(Point{X: 2, Y: 2}) // shares corner tile (2,2)
	c := NewSize(3, 3).ToRect(Point{X: 3, Y: 0}) // touches a's right edge +1

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Error("Expected a and b to overlap")
	}
	if a.Overlaps(c) {
		t.Error("Expected a and c to be disjoint")
	}
}

func TestRectangleWithEdges(t *testing.T) {
	r := NewSize(10, 10).ToRect(Origin())

	top := r.WithBottom(4)
	bottom := r.WithTop(5)

	if top.Height()+bottom.Height() != r.Height() {
		t.Errorf("Horizontal split must preserve total height: %d + %d != %d",
			top.Height(), bottom.Height(), r.Height())
	}
	if top.Width() != r.Width() || bottom.Width() != r.Width() {
		t.Error("Horizontal split must preserve width")
	}

	left := r.WithRight(3)
	right := r.WithLeft(4)
	if left.Width()+right.Width() != r.Width() {
		t.Errorf("Vertical split must preserve total width: %d + %d != %d",
			left.Width(), right.Width(), r.Width())
	}
}

func TestRectangleIterPointsOrder(t *testing.T) {
	r := NewSize(2, 2).ToRect(Point{X: 5, Y: 5})
	pts := r.IterPoints()

	expected := []Point{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	if len(pts) != len(expected) {
		t.Fatalf("Expected %d points, got %d", len(expected), len(pts))
	}
	for i := range expected {
		if pts[i] != expected[i] {
			t.Errorf("Point %d: expected %v, got %v (row-major order required)",
				i, expected[i], pts[i])
		}
	}
}
