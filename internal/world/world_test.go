package world

import (
	"math/rand"
	"testing"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/rules"
)

func testConfig() *Config {
	return &Config{Seed: 1, MapWidth: 5, MapHeight: 5, MessageLogSize: 10}
}

// Плоский этаж: сплошной пол, без обитателей.
func flatBuilder(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
	m := gamemap.New(size)
	for _, p := range m.Rect().IterPoints() {
		m.Place(entity.Floor.New(), p)
	}
	return m
}

func TestNewPlacesPlayer(t *testing.T) {
	w := New(testConfig(), []Floor{{Name: "surface", Build: flatBuilder}})

	tile, err := w.Map().Find(w.Player())
	if err != nil {
		t.Fatalf("player is not on the map: %v", err)
	}
	if got := tile.Position(); got != geometry.Origin() {
		t.Errorf("player spawned at %s, want the first open tile", got)
	}
	if w.Map().Player() != w.Player() {
		t.Error("map does not index the player")
	}
}

func TestPlayerActionFromDirection(t *testing.T) {
	build := func(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
		m := flatBuilder(rng, size, up, down)
		door := m.Tile(geometry.Point{X: 1, Y: 0})
		if err := m.Remove(door.Architecture()); err != nil {
			t.Fatalf("clearing the door tile: %v", err)
		}
		m.Place(entity.Door.New(), geometry.Point{X: 1, Y: 0})
		m.Place(entity.Salamango.New(), geometry.Point{X: 0, Y: 1})
		return m
	}
	w := New(testConfig(), []Floor{{Name: "surface", Build: build}})

	// Игрок на (0,0): справа закрытая дверь, снизу существо.
	if _, ok := w.PlayerActionFromDirection(geometry.Right).(*rules.Open); !ok {
		t.Error("a closed door should prompt an open action")
	}
	if _, ok := w.PlayerActionFromDirection(geometry.Down).(*rules.MeleeAttack); !ok {
		t.Error("a creature should prompt an attack")
	}
	if _, ok := w.PlayerActionFromDirection(geometry.DownRight).(*rules.Walk); !ok {
		t.Error("open floor should prompt a walk")
	}
	if ev := w.PlayerActionFromDirection(geometry.Up); ev != nil {
		t.Errorf("stepping off the map should yield no action, got %T", ev)
	}
}

func TestAdvanceRunsQueuedPlayerAction(t *testing.T) {
	w := New(testConfig(), []Floor{{Name: "surface", Build: flatBuilder}})

	w.PushPlayerAction(rules.NewWalk(w.Player(), geometry.Right))
	w.Advance()

	tile, err := w.Map().Find(w.Player())
	if err != nil {
		t.Fatalf("player fell off the map: %v", err)
	}
	if want := (geometry.Point{X: 1, Y: 0}); tile.Position() != want {
		t.Errorf("player at %s after walking right, want %s", tile.Position(), want)
	}
}

func TestAdvanceLetsCreaturesAct(t *testing.T) {
	build := func(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
		m := flatBuilder(rng, size, up, down)
		m.Place(entity.Salamango.New(), geometry.Point{X: 1, Y: 0})
		return m
	}
	w := New(testConfig(), []Floor{{Name: "surface", Build: build}})

	before := w.Player().Combatant().Health()
	w.Advance()

	// Саламанго стоит вплотную и должен укусить.
	if got := w.Player().Combatant().Health(); got != before-1 {
		t.Errorf("player health = %d after the bite, want %d", got, before-1)
	}
	if w.Log().Len() == 0 {
		t.Error("the attack produced no narration")
	}
}

func TestTravelArrivesAtReturnPortal(t *testing.T) {
	builds := map[string]int{}
	portalBuilder := func(name string) MapBuilder {
		return func(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
			builds[name]++
			m := flatBuilder(rng, size, up, down)
			place := func(p geometry.Point, arch *entity.Entity) {
				tile := m.Tile(p)
				if err := m.Remove(tile.Architecture()); err != nil {
					t.Fatalf("clearing a portal tile: %v", err)
				}
				m.Place(arch, p)
			}
			if down != "" {
				place(geometry.Point{X: 2, Y: 2},
					entity.StairsDown.New(entity.PortalDown{Destination: down}))
			}
			if up != "" {
				place(geometry.Point{X: 3, Y: 3},
					entity.StairsUp.New(entity.PortalUp{Destination: up}))
			}
			return m
		}
	}
	w := New(testConfig(), []Floor{
		{Name: "upper", Build: portalBuilder("upper")},
		{Name: "lower", Build: portalBuilder("lower")},
	})

	if builds["lower"] != 0 {
		t.Fatal("the lower floor was generated before anyone traveled there")
	}

	w.Travel("lower")
	if w.CurrentFloor() != "lower" {
		t.Fatalf("current floor = %q, want lower", w.CurrentFloor())
	}
	tile, err := w.Map().Find(w.Player())
	if err != nil {
		t.Fatalf("player lost in transit: %v", err)
	}
	if want := (geometry.Point{X: 3, Y: 3}); tile.Position() != want {
		t.Errorf("arrived at %s, want the stairs back at %s", tile.Position(), want)
	}

	w.Travel("upper")
	tile, _ = w.Map().Find(w.Player())
	if want := (geometry.Point{X: 2, Y: 2}); tile.Position() != want {
		t.Errorf("returned to %s, want the stairs down at %s", tile.Position(), want)
	}
	if builds["upper"] != 1 || builds["lower"] != 1 {
		t.Errorf("floors generated %v times, want once each", builds)
	}
}

func TestDescendEvent(t *testing.T) {
	build := func(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
		m := flatBuilder(rng, size, up, down)
		if down != "" {
			tile := m.Tile(geometry.Origin())
			if err := m.Remove(tile.Architecture()); err != nil {
				t.Fatalf("clearing the stairs tile: %v", err)
			}
			m.Place(entity.StairsDown.New(entity.PortalDown{Destination: down}), geometry.Origin())
		}
		if up != "" {
			p := geometry.Point{X: 1, Y: 1}
			tile := m.Tile(p)
			if err := m.Remove(tile.Architecture()); err != nil {
				t.Fatalf("clearing the stairs tile: %v", err)
			}
			m.Place(entity.StairsUp.New(entity.PortalUp{Destination: up}), p)
		}
		return m
	}
	w := New(testConfig(), []Floor{
		{Name: "upper", Build: build},
		{Name: "lower", Build: build},
	})

	// Игрок стартует прямо на лестнице вниз.
	w.PushPlayerAction(rules.NewDescend(w.Player()))
	w.Advance()

	if w.CurrentFloor() != "lower" {
		t.Errorf("current floor = %q after descending, want lower", w.CurrentFloor())
	}
	recent := w.Log().Recent(1)
	if len(recent) != 1 || recent[0] != "Вы спускаетесь по лестнице." {
		t.Errorf("descend narration = %q", recent)
	}
}

func TestMessageLogCaps(t *testing.T) {
	log := NewMessageLog(3)
	for _, msg := range []string{"a", "b", "c", "d"} {
		log.Add(msg)
	}
	if log.Len() != 3 {
		t.Fatalf("log holds %d messages, want 3", log.Len())
	}
	recent := log.Recent(3)
	if recent[0] != "b" || recent[2] != "d" {
		t.Errorf("log kept %v, want the newest three", recent)
	}
}

func TestEventDequeOrder(t *testing.T) {
	var d eventDeque
	walk := rules.NewWalk(entity.Player.New(), geometry.Up)
	die := rules.NewDie(entity.Player.New())
	pick := rules.NewPickUp(entity.Player.New())

	d.PushBack(walk)
	d.PushBack(pick)
	d.PushFront(die)

	want := []rules.Event{die, walk, pick}
	for i, wantEv := range want {
		ev, ok := d.PopFront()
		if !ok || ev != wantEv {
			t.Fatalf("pop %d = %v, want %v", i, ev, wantEv)
		}
	}
	if _, ok := d.PopFront(); ok {
		t.Error("popped from an empty deque")
	}
}
