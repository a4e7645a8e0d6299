package gamemap

import (
	"errors"
	"testing"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
)

func newTestMap() *Map {
	m := New(geometry.Size{Width: 5, Height: 5})
	for _, row := range m.Rows() {
		for _, tile := range row {
			m.Place(entity.Floor.New(), tile.Position())
		}
	}
	return m
}

func TestPlaceFindMoveRemove(t *testing.T) {
	m := newTestMap()
	lizard := entity.Salamango.New()
	start := geometry.Point{X: 1, Y: 1}

	m.Place(lizard, start)
	tile, err := m.Find(lizard)
	if err != nil {
		t.Fatalf("Find after Place: %v", err)
	}
	if tile.Position() != start || tile.Creature() != lizard {
		t.Fatalf("lizard not where it was placed: %v", tile.Position())
	}

	dest := geometry.Point{X: 2, Y: 3}
	m.Move(lizard, dest)
	if m.Tile(start).Creature() != nil {
		t.Error("old tile still holds the creature after Move")
	}
	if m.Tile(dest).Creature() != lizard {
		t.Error("new tile does not hold the creature after Move")
	}

	if err := m.Remove(lizard); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := m.Find(lizard); !errors.Is(err, ErrNotPlaced) {
		t.Errorf("Find after Remove: %v, want ErrNotPlaced", err)
	}
	if err := m.Remove(lizard); !errors.Is(err, ErrNotPlaced) {
		t.Errorf("second Remove: %v, want ErrNotPlaced", err)
	}
}

func TestDoublePlacePanics(t *testing.T) {
	m := newTestMap()
	lizard := entity.Salamango.New()
	m.Place(lizard, geometry.Point{X: 0, Y: 0})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second Place of the same entity")
		}
	}()
	m.Place(lizard, geometry.Point{X: 1, Y: 0})
}

func TestCreatureSlotConflictPanics(t *testing.T) {
	m := newTestMap()
	p := geometry.Point{X: 2, Y: 2}
	m.Place(entity.Salamango.New(), p)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic placing a second creature on one tile")
		}
	}()
	m.Place(entity.Salamango.New(), p)
}

func TestItemsStack(t *testing.T) {
	m := newTestMap()
	p := geometry.Point{X: 3, Y: 3}
	gem := entity.Gem.New()
	potion := entity.Potion.New()
	m.Place(gem, p)
	m.Place(potion, p)

	items := m.Tile(p).Items()
	if len(items) != 2 || items[0] != gem || items[1] != potion {
		t.Fatalf("item stack out of order: %v", items)
	}
}

func TestThingsOrder(t *testing.T) {
	m := newTestMap()
	p := geometry.Point{X: 1, Y: 2}
	gem := entity.Gem.New()
	lizard := entity.Salamango.New()
	m.Place(gem, p)
	m.Place(lizard, p)

	things := m.Tile(p).Things()
	if len(things) != 3 {
		t.Fatalf("Things() length = %d, want 3", len(things))
	}
	if things[0] != lizard {
		t.Error("creature must come first in Things()")
	}
	if things[1] != gem {
		t.Error("items must come before architecture in Things()")
	}
	if things[2].Layer() != entity.LayerArchitecture {
		t.Error("architecture must come last in Things()")
	}
}

func TestPlayerPointer(t *testing.T) {
	m := newTestMap()
	player := entity.Player.New()
	if m.Player() != nil {
		t.Fatal("fresh map has a player")
	}
	m.Place(player, geometry.Point{X: 4, Y: 4})
	if m.Player() != player {
		t.Error("player pointer not set on Place")
	}
	if err := m.Remove(player); err != nil {
		t.Fatalf("Remove player: %v", err)
	}
	if m.Player() != nil {
		t.Error("player pointer survived Remove")
	}
}

func TestPortalIndex(t *testing.T) {
	m := New(geometry.Size{Width: 3, Height: 3})
	stairs := entity.StairsDown.New(entity.PortalDown{Destination: "deeper"})
	m.Place(stairs, geometry.Point{X: 1, Y: 1})

	if m.Portal("deeper") != stairs {
		t.Error("portal not indexed by destination")
	}
	if m.Portal("elsewhere") != nil {
		t.Error("unknown destination resolved to a portal")
	}
	if err := m.Remove(stairs); err != nil {
		t.Fatalf("Remove stairs: %v", err)
	}
	if m.Portal("deeper") != nil {
		t.Error("portal index entry survived Remove")
	}
}
