package rules

import (
	"fmt"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/pkg/logger"
)

// NewGameRegistry собирает полную таблицу игровых правил и замораживает
// ее. Вызывается один раз при создании мира.
func NewGameRegistry() *Registry {
	r := NewRegistry()
	registerPhysicsRules(r)
	registerOpenableRules(r)
	registerCombatRules(r)
	registerItemRules(r)
	registerEquipmentRules(r)
	registerPortalRules(r)
	r.Freeze()
	return r
}

// --- ФИЗИКА ---

func registerPhysicsRules(r *Registry) {
	// Непроходимое отменяет шаг. Для существ это заодно страховка от
	// двух существ на одной клетке.
	r.Check(EventWalk, entity.ImplSolid, func(ctx Context, ev Event, target *entity.Entity) {
		ev.Cancel()
	})

	// Закрытая дверь не пускает.
	r.Check(EventWalk, entity.ImplDoor, func(ctx Context, ev Event, target *entity.Entity) {
		if !target.Openable().IsOpen() {
			ev.Cancel()
		}
	})

	performMove := func(ctx Context, ev Event, target *entity.Entity) {
		walk := ev.(*Walk)
		ctx.Map().Move(walk.Actor(), walk.Dest())
	}
	r.Perform(EventWalk, entity.ImplEmpty, performMove)
	r.Perform(EventWalk, entity.ImplDoor, performMove)
}

// --- ДВЕРИ ---

func registerOpenableRules(r *Registry) {
	r.Check(EventOpen, entity.ImplOpenable, func(ctx Context, ev Event, target *entity.Entity) {
		op := target.Openable()
		if op.IsOpen() || op.IsLocked() {
			ev.Cancel()
		}
	})

	r.Perform(EventOpen, entity.ImplOpenable, func(ctx Context, ev Event, target *entity.Entity) {
		target.Openable().SetOpen(true)
	})

	r.Announce(EventOpen, entity.ImplOpenable, func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("%s открывается.", target.Name()))
	})
}

// --- БОЙ ---

func registerCombatRules(r *Registry) {
	// Удар выливается в урон; урон разрешается немедленно, до хода
	// следующего актора.
	performAttack := func(ctx Context, ev Event, target *entity.Entity) {
		attacker := ev.Actor()
		ctx.QueueImmediate(NewDamage(attacker, target, attacker.Combatant().Strength()))
	}
	announceAttack := func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("%s бьет %s.", ev.Actor().Name(), target.Name()))
	}

	performDamage := func(ctx Context, ev Event, target *entity.Entity) {
		dmg := ev.(*Damage)
		com := target.Combatant()
		com.SetHealth(com.Health() - dmg.Amount())
		if com.Health() <= 0 {
			ctx.QueueImmediate(NewDie(target))
		}
	}
	announceDamage := func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("%s получает %d урона.", target.Name(), ev.(*Damage).Amount()))
	}

	// Гибель: снять с карты и оборвать все отношения, чтобы индексы
	// выживших не держали мертвеца.
	performDie := func(ctx Context, ev Event, target *entity.Entity) {
		if err := ctx.Map().Remove(target); err != nil {
			logger.Log.WithFields(map[string]interface{}{
				"component": "combat_system",
				"entity":    target.Name(),
			}).Debug("dying entity was not on the map")
		}
		target.DetachAllRelations()
	}
	announceDie := func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("%s погибает.", target.Name()))
	}

	// Разрушаемая архитектура дерется по тем же правилам, что и
	// существа, только сама не бьет.
	for _, impl := range []entity.Impl{entity.ImplCombatant, entity.ImplBreakable} {
		r.Perform(EventMeleeAttack, impl, performAttack)
		r.Announce(EventMeleeAttack, impl, announceAttack)
		r.Perform(EventDamage, impl, performDamage)
		r.Announce(EventDamage, impl, announceDamage)
		r.Perform(EventDie, impl, performDie)
		r.Announce(EventDie, impl, announceDie)
	}
}

// --- ПРЕДМЕТЫ ---

func registerItemRules(r *Registry) {
	r.Check(EventPickUp, entity.ImplPortable, func(ctx Context, ev Event, target *entity.Entity) {
		if !ev.Actor().Has(entity.KindContainer) {
			ev.Cancel()
		}
	})

	r.Perform(EventPickUp, entity.ImplPortable, func(ctx Context, ev Event, target *entity.Entity) {
		if err := ctx.Map().Remove(target); err != nil {
			// Кто-то успел подобрать предмет тем же событием; штатно.
			logger.Log.WithFields(map[string]interface{}{
				"component": "item_system",
				"item":      target.Name(),
			}).Debug("picked-up item already off the map")
			return
		}
		ev.Actor().Container().AddItem(target)
	})

	r.Announce(EventPickUp, entity.ImplPortable, func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("Вы подбираете: %s.", target.Name()))
	})
}

// --- ЭКИПИРОВКА ---

func registerEquipmentRules(r *Registry) {
	r.Check(EventEquip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		// Надетое одним нельзя надеть другому.
		if len(target.Equipment().WornBy()) > 0 {
			ev.Cancel()
		}
	})

	r.Perform(EventEquip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		entity.Attach(entity.RelWearing, ev.Actor(), target)
	})

	r.Announce(EventEquip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("Вы надеваете: %s.", target.Name()))
	})

	r.Check(EventUnequip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		if wearingRelation(ev.Actor(), target) == nil {
			ev.Cancel()
		}
	})

	r.Perform(EventUnequip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		if rel := wearingRelation(ev.Actor(), target); rel != nil {
			rel.Detach()
		}
	})

	r.Announce(EventUnequip, entity.ImplEquipment, func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Announce(fmt.Sprintf("Вы снимаете: %s.", target.Name()))
	})
}

func wearingRelation(wearer, item *entity.Entity) *entity.Relation {
	for _, rel := range wearer.RelatesTo(entity.RelWearing) {
		if rel.To() == item {
			return rel
		}
	}
	return nil
}

// --- ПЕРЕХОДЫ МЕЖДУ КАРТАМИ ---

// Правила переходов регистрируются на родительский вид Travel: подъем и
// спуск отличаются только тем, какой портал они находят.
func registerPortalRules(r *Registry) {
	check := func(ctx Context, ev Event, target *entity.Entity) {
		if target.Portal().Destination() == "" {
			ev.Cancel()
		}
	}
	perform := func(ctx Context, ev Event, target *entity.Entity) {
		ctx.Travel(target.Portal().Destination())
	}
	announce := func(ctx Context, ev Event, target *entity.Entity) {
		switch ev.Kind() {
		case EventAscend:
			ctx.Announce("Вы поднимаетесь по лестнице.")
		case EventDescend:
			ctx.Announce("Вы спускаетесь по лестнице.")
		}
	}

	for _, impl := range []entity.Impl{entity.ImplPortalUp, entity.ImplPortalDown} {
		r.Check(EventTravel, impl, check)
		r.Perform(EventTravel, impl, perform)
		r.Announce(EventTravel, impl, announce)
	}
}
