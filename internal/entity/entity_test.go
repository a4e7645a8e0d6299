package entity

import "testing"

// Two components claiming the same capability is a content bug and must
// fail at type construction time.
func TestNewTypeDuplicateKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate capability")
		}
	}()
	NewType(LayerArchitecture, "broken", Solid{}, Empty{})
}

func TestOverrideWrongImplPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched override impl")
		}
	}()
	// Player declares Combatant; a Breakable initializer is a different
	// implementation of the same capability and must be rejected.
	Player.New(Breakable{Fraction: 0.5})
}

func TestOverrideUndeclaredKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undeclared capability override")
		}
	}()
	Wall.New(Combatant{Health: 5, Strength: 1})
}

func TestAdaptUnsupportedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adapting an unsupported capability")
		}
	}()
	Wall.New().Combatant()
}

func TestCombatantDefaultsAndInstanceWrites(t *testing.T) {
	player := Player.New()
	com := player.Combatant()

	if com.Health() != 10 {
		t.Errorf("fresh player health = %d, want 10", com.Health())
	}
	if com.Strength() != 3 {
		t.Errorf("player strength = %d, want 3", com.Strength())
	}

	com.SetHealth(6)
	if com.Health() != 6 {
		t.Errorf("after SetHealth(6) health = %d", com.Health())
	}

	// Instance writes must never leak into the type.
	other := Player.New()
	if other.Combatant().Health() != 10 {
		t.Errorf("second player health = %d, type was mutated", other.Combatant().Health())
	}
}

func TestBreakableFractionOverride(t *testing.T) {
	ruin := Ruin.New(Breakable{Fraction: 0.5})
	com := ruin.Combatant()
	if com.Health() != 5 {
		t.Errorf("half-broken ruin health = %d, want 5", com.Health())
	}
	if com.MaxHealth() != 10 {
		t.Errorf("ruin max health = %d, want 10", com.MaxHealth())
	}
	if com.Strength() != 0 {
		t.Errorf("ruin strength = %d, want 0", com.Strength())
	}
}

func TestPortalDestinationOverride(t *testing.T) {
	stairs := StairsDown.New(PortalDown{Destination: "dungeon-2"})
	if dest := stairs.Portal().Destination(); dest != "dungeon-2" {
		t.Errorf("portal destination = %q, want %q", dest, "dungeon-2")
	}
	// The declared type carries no destination.
	if dest := StairsDown.New().Portal().Destination(); dest != "" {
		t.Errorf("bare stairs destination = %q, want empty", dest)
	}
}

func TestModifierChain(t *testing.T) {
	player := Player.New()
	armor := Armor.New()

	if got := player.Combatant().Strength(); got != 3 {
		t.Fatalf("unequipped strength = %d, want 3", got)
	}

	rel := Attach(RelWearing, player, armor)
	if got := player.Combatant().Strength(); got != 6 {
		t.Errorf("strength with armor = %d, want 6", got)
	}

	rel.Detach()
	if got := player.Combatant().Strength(); got != 3 {
		t.Errorf("strength after taking armor off = %d, want 3", got)
	}
}

func TestRelationIndexes(t *testing.T) {
	player := Player.New()
	first := Armor.New()
	second := Armor.New()

	Attach(RelWearing, player, first)
	Attach(RelWearing, player, second)

	rels := player.RelatesTo(RelWearing)
	if len(rels) != 2 || rels[0].To() != first || rels[1].To() != second {
		t.Fatalf("outgoing relations out of order: %v", rels)
	}
	if worn := first.Equipment().WornBy(); len(worn) != 1 || worn[0] != player {
		t.Errorf("armor worn-by = %v, want the player", worn)
	}

	player.DetachAllRelations()
	if len(player.RelatesTo(RelWearing)) != 0 {
		t.Error("relations survived DetachAllRelations on the wearer")
	}
	if len(first.Equipment().WornBy()) != 0 {
		t.Error("dead wearer still indexed on the worn item")
	}
}

func TestDoorPhysics(t *testing.T) {
	door := Door.New()
	if !door.Physics().Blocks() {
		t.Error("closed door must block")
	}
	door.Openable().SetOpen(true)
	if door.Physics().Blocks() {
		t.Error("open door must not block")
	}
}

func TestHealthRenderDecays(t *testing.T) {
	ruin := Ruin.New()
	fresh := ruin.Render().Sprite()
	ruin.Combatant().SetHealth(1)
	broken := ruin.Render().Sprite()
	if fresh == broken {
		t.Errorf("ruin glyph did not change with health: %q", fresh)
	}
	if broken != '◾' {
		t.Errorf("nearly dead ruin glyph = %q, want %q", broken, '◾')
	}
}

func TestContainerInventory(t *testing.T) {
	player := Player.New()
	gem := Gem.New()

	inv := player.Container()
	inv.AddItem(gem)
	if !inv.Contains(gem) {
		t.Fatal("gem missing from inventory after AddItem")
	}
	if !inv.RemoveItem(gem) {
		t.Fatal("RemoveItem did not find the gem")
	}
	if inv.RemoveItem(gem) {
		t.Error("RemoveItem found an already removed gem")
	}
}
