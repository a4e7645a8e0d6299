package fractor

import (
	"math/rand"
	"testing"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/noise"
)

// A canvas with one room over its whole extent must report exactly the
// interior as floor space and none of the walls.
func TestCanvasFloorSpaces(t *testing.T) {
	canvas := NewMapCanvas(geometry.Size{Width: 10, Height: 10})
	r := room{rect: canvas.Rect()}
	r.drawTo(canvas)

	floor := canvas.FloorSpaces()
	if want := 8 * 8; len(floor) != want {
		t.Fatalf("floor spaces = %d, want %d", len(floor), want)
	}
	for _, p := range floor {
		if p.X == 0 || p.Y == 0 || p.X == 9 || p.Y == 9 {
			t.Errorf("perimeter point %s reported as floor", p)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	canvas := NewMapCanvas(geometry.Size{Width: 4, Height: 4})
	if len(canvas.FloorSpaces()) != 0 {
		t.Fatal("cave-wall canvas reported floor spaces")
	}
	canvas.Clear(entity.Floor)
	if got := len(canvas.FloorSpaces()); got != 16 {
		t.Errorf("cleared canvas floor spaces = %d, want 16", got)
	}
	canvas.SetArchitecture(geometry.Point{X: 1, Y: 1}, entity.Wall)
	if got := len(canvas.FloorSpaces()); got != 15 {
		t.Errorf("floor spaces after placing a wall = %d, want 15", got)
	}
}

// Partitioning must never produce a leaf below the minimum size and must
// stop at the target region count.
func TestBinaryPartitionBounds(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		f := NewBinaryPartitionFractor(
			rand.New(rand.NewSource(seed)),
			geometry.Size{Width: 40, Height: 40},
			geometry.Size{Width: 5, Height: 5})

		regions := f.maximallyPartition()
		if len(regions) > wantedRegions {
			t.Fatalf("seed %d: %d regions, want at most %d", seed, len(regions), wantedRegions)
		}
		for _, region := range regions {
			if region.Width() < 5 || region.Height() < 5 {
				t.Errorf("seed %d: region %dx%d below the 5x5 minimum",
					seed, region.Width(), region.Height())
			}
		}
	}
}

func TestBinaryPartitionGenerateMap(t *testing.T) {
	f := NewBinaryPartitionFractor(
		rand.New(rand.NewSource(3)),
		geometry.Size{Width: 40, Height: 20},
		geometry.Size{Width: 5, Height: 5})
	m := GenerateMap(f, "surface", "depths")

	if m.Portal("surface") == nil {
		t.Error("generated map has no upward portal")
	}
	if m.Portal("depths") == nil {
		t.Error("generated map has no downward portal")
	}

	creatures := 0
	items := 0
	for _, row := range m.Rows() {
		for _, tile := range row {
			if tile.Architecture() == nil {
				t.Fatalf("tile %s has no architecture", tile.Position())
			}
			if tile.Creature() != nil {
				creatures++
			}
			items += len(tile.Items())
		}
	}
	if creatures == 0 {
		t.Error("no creatures scattered on the map")
	}
	if items == 0 {
		t.Error("no items scattered on the map")
	}
}

// Same seed, same map.
func TestGenerateMapDeterminism(t *testing.T) {
	build := func() *gamemap.Map {
		f := NewBinaryPartitionFractor(
			rand.New(rand.NewSource(42)),
			geometry.Size{Width: 30, Height: 20},
			geometry.Size{Width: 5, Height: 5})
		return GenerateMap(f, "", "down")
	}
	a, b := build(), build()

	for y, row := range a.Rows() {
		for x, tile := range row {
			other := b.Rows()[y][x]
			if tile.Architecture().Type() != other.Architecture().Type() {
				t.Fatalf("architecture diverged at (%d, %d): %s != %s",
					x, y, tile.Architecture().Name(), other.Architecture().Name())
			}
		}
	}
}

// Every pair of local minima must end up in one connected dirt component.
func TestWatershedConnectivity(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		region := geometry.Size{Width: 30, Height: 20}.ToRect(geometry.Origin())
		field := noise.NewDiscrete(
			rand.New(rand.NewSource(seed)), []int{30, 20}, 6, 1)
		noiseAt := make(map[geometry.Point]float64)
		for _, p := range region.IterPoints() {
			noiseAt[p] = field.At(p.X, p.Y)
		}

		minima := localMinima(region, noiseAt)
		if len(minima) < 2 {
			continue
		}
		paths := floodConnect(region, noiseAt, minima)

		// Walk the dirt component from one minimum; it must cover all.
		dirt := make(map[geometry.Point]struct{}, len(minima)+len(paths))
		for p := range minima {
			dirt[p] = struct{}{}
		}
		for p := range paths {
			dirt[p] = struct{}{}
		}

		start := sortedPoints(minima)[0]
		seen := map[geometry.Point]struct{}{start: {}}
		frontier := []geometry.Point{start}
		for len(frontier) > 0 {
			p := frontier[0]
			frontier = frontier[1:]
			for _, npt := range p.Neighbors() {
				if _, isDirt := dirt[npt]; !isDirt {
					continue
				}
				if _, ok := seen[npt]; ok {
					continue
				}
				seen[npt] = struct{}{}
				frontier = append(frontier, npt)
			}
		}

		for p := range minima {
			if _, ok := seen[p]; !ok {
				t.Fatalf("seed %d: minimum %s not connected to the path network", seed, p)
			}
		}
	}
}

func TestPerlinGenerateMap(t *testing.T) {
	f := NewPerlinFractor(rand.New(rand.NewSource(7)), geometry.Size{Width: 30, Height: 20})
	m := GenerateMap(f, "", "below")

	if m.Portal("below") == nil {
		t.Error("forest has no downward portal")
	}
	walkable := 0
	for _, row := range m.Rows() {
		for _, tile := range row {
			if !tile.Architecture().Physics().Blocks() {
				walkable++
			}
		}
	}
	if walkable == 0 {
		t.Error("forest has no walkable tiles")
	}
}

func TestRuinFractorDecays(t *testing.T) {
	f := NewRuinFractor(rand.New(rand.NewSource(11)), geometry.Size{Width: 30, Height: 20})
	m := GenerateMap(f, "up", "")

	breakables := 0
	for _, row := range m.Rows() {
		for _, tile := range row {
			arch := tile.Architecture()
			if !arch.Has(entity.KindCombatant) {
				continue
			}
			breakables++
			com := arch.Combatant()
			if com.Health() < 1 || com.Health() > com.MaxHealth() {
				t.Fatalf("breakable at %s has health %d of %d",
					tile.Position(), com.Health(), com.MaxHealth())
			}
		}
	}
	if breakables == 0 {
		t.Error("ruin decay produced no breakable architecture")
	}
}

// barrenFractor leaves the canvas as solid cave wall.
type barrenFractor struct {
	base
}

func (f *barrenFractor) Generate() {}

func TestPlaceStuffNeedsOpenSpace(t *testing.T) {
	f := &barrenFractor{base: newBase(rand.New(rand.NewSource(1)), geometry.Size{Width: 5, Height: 5})}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic generating on a canvas with no open spaces")
		}
	}()
	GenerateMap(f, "", "")
}

// crampedFractor digs fewer open cells than the floor roster needs.
type crampedFractor struct {
	base
}

func (f *crampedFractor) Generate() {
	for x := 0; x < 3; x++ {
		f.canvas.SetArchitecture(geometry.Point{X: x, Y: 0}, entity.Floor)
	}
}

func TestPlaceStuffNeedsRoomForRoster(t *testing.T) {
	f := &crampedFractor{base: newBase(rand.New(rand.NewSource(1)), geometry.Size{Width: 5, Height: 5})}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when the roster cannot get distinct cells")
		}
	}()
	GenerateMap(f, "", "")
}
