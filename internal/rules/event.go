// Package rules реализует событийный конвейер: игровые действия
// описываются событиями, события разрешаются в три фазы (проверка,
// исполнение, оглашение) правилами, которые вносят компоненты сущностей.
package rules

import (
	"math/rand"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
)

// Context - то, что мир предоставляет правилам: карта, очереди событий и
// журнал сообщений. Реализуется контроллером мира.
type Context interface {
	// Map - активная карта.
	Map() *gamemap.Map
	// QueueEvent ставит событие в хвост очереди.
	QueueEvent(ev Event)
	// QueueImmediate ставит событие в голову очереди: причинно-зависимые
	// продолжения разрешаются до хода следующего актора.
	QueueImmediate(ev Event)
	// Travel переносит игрока на карту с данным именем.
	Travel(destination string)
	// Announce пишет строку в журнал сообщений.
	Announce(message string)
	// Rand - общий генератор случайностей симуляции.
	Rand() *rand.Rand
}

// --- ВИДЫ СОБЫТИЙ ---

type EventKind uint8

const (
	EventWalk EventKind = iota
	EventOpen
	EventMeleeAttack
	EventDamage
	EventDie
	EventPickUp
	EventEquip
	EventUnequip
	// EventTravel - общий родитель подъема и спуска; напрямую не
	// создается.
	EventTravel
	EventAscend
	EventDescend
)

var eventKindNames = map[EventKind]string{
	EventWalk:        "walk",
	EventOpen:        "open",
	EventMeleeAttack: "melee_attack",
	EventDamage:      "damage",
	EventDie:         "die",
	EventPickUp:      "pick_up",
	EventEquip:       "equip",
	EventUnequip:     "unequip",
	EventTravel:      "travel",
	EventAscend:      "ascend",
	EventDescend:     "descend",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// eventParents - иерархия видов: правило, зарегистрированное на
// родителя, срабатывает и на потомков.
var eventParents = map[EventKind]EventKind{
	EventAscend:  EventTravel,
	EventDescend: EventTravel,
}

// Event - запрошенное действие. Живет один проход через Fire и нигде
// не сохраняется.
type Event interface {
	Kind() EventKind
	// Actor - инициатор действия; у порожденных событий может быть nil.
	Actor() *entity.Entity
	// FindTargets находит цели по текущему состоянию карты. Пустой
	// результат превращает запуск в no-op.
	FindTargets(ctx Context) []*entity.Entity
	// Cancel отменяет событие; флаг взводится один раз и навсегда.
	Cancel()
	Cancelled() bool
}

type baseEvent struct {
	actor     *entity.Entity
	cancelled bool
}

func (e *baseEvent) Actor() *entity.Entity { return e.actor }
func (e *baseEvent) Cancel()               { e.cancelled = true }
func (e *baseEvent) Cancelled() bool       { return e.cancelled }

// actorTile возвращает клетку инициатора или nil, если тот уже не стоит
// на карте (умер, пока событие ждало в очереди).
func (e *baseEvent) actorTile(ctx Context) *gamemap.Tile {
	tile, err := ctx.Map().Find(e.actor)
	if err != nil {
		return nil
	}
	return tile
}

// destTile возвращает клетку в шаге от инициатора или nil за границей.
func (e *baseEvent) destTile(ctx Context, dir geometry.Direction) *gamemap.Tile {
	tile := e.actorTile(ctx)
	if tile == nil {
		return nil
	}
	dest := tile.Position().Step(dir)
	if !ctx.Map().Contains(dest) {
		return nil
	}
	return ctx.Map().Tile(dest)
}

// --- ДВИЖЕНИЕ ---

// Walk - попытка шагнуть в направлении. Цели - все жильцы клетки
// назначения: существо на ней отменит шаг, проходимая архитектура
// исполнит его.
type Walk struct {
	baseEvent
	direction geometry.Direction
	dest      geometry.Point
}

func NewWalk(actor *entity.Entity, dir geometry.Direction) *Walk {
	return &Walk{baseEvent: baseEvent{actor: actor}, direction: dir}
}

func (*Walk) Kind() EventKind { return EventWalk }

func (e *Walk) Direction() geometry.Direction { return e.direction }

// Dest - клетка назначения; валидна после FindTargets.
func (e *Walk) Dest() geometry.Point { return e.dest }

func (e *Walk) FindTargets(ctx Context) []*entity.Entity {
	tile := e.destTile(ctx, e.direction)
	if tile == nil {
		return nil
	}
	e.dest = tile.Position()
	return tile.Things()
}

// --- ДВЕРИ ---

// Open - попытка открыть то, что стоит в направлении.
type Open struct {
	baseEvent
	direction geometry.Direction
}

func NewOpen(actor *entity.Entity, dir geometry.Direction) *Open {
	return &Open{baseEvent: baseEvent{actor: actor}, direction: dir}
}

func (*Open) Kind() EventKind { return EventOpen }

func (e *Open) FindTargets(ctx Context) []*entity.Entity {
	tile := e.destTile(ctx, e.direction)
	if tile == nil {
		return nil
	}
	arch := tile.Architecture()
	if arch == nil || !arch.Has(entity.KindOpenable) {
		return nil
	}
	return []*entity.Entity{arch}
}

// --- БОЙ ---

// MeleeAttack - удар по существу в соседней клетке.
type MeleeAttack struct {
	baseEvent
	direction geometry.Direction
}

func NewMeleeAttack(actor *entity.Entity, dir geometry.Direction) *MeleeAttack {
	return &MeleeAttack{baseEvent: baseEvent{actor: actor}, direction: dir}
}

func (*MeleeAttack) Kind() EventKind { return EventMeleeAttack }

func (e *MeleeAttack) FindTargets(ctx Context) []*entity.Entity {
	tile := e.destTile(ctx, e.direction)
	if tile == nil {
		return nil
	}
	creature := tile.Creature()
	if creature == nil {
		return nil
	}
	return []*entity.Entity{creature}
}

// Damage - получение урона. Порождается ударом, цель задана явно.
type Damage struct {
	baseEvent
	victim *entity.Entity
	amount int
}

func NewDamage(source, victim *entity.Entity, amount int) *Damage {
	return &Damage{baseEvent: baseEvent{actor: source}, victim: victim, amount: amount}
}

func (*Damage) Kind() EventKind { return EventDamage }

func (e *Damage) Victim() *entity.Entity { return e.victim }
func (e *Damage) Amount() int            { return e.amount }

func (e *Damage) FindTargets(ctx Context) []*entity.Entity {
	return []*entity.Entity{e.victim}
}

// Die - гибель. Порождается смертельным уроном.
type Die struct {
	baseEvent
	victim *entity.Entity
}

func NewDie(victim *entity.Entity) *Die {
	return &Die{victim: victim}
}

func (*Die) Kind() EventKind { return EventDie }

func (e *Die) Victim() *entity.Entity { return e.victim }

func (e *Die) FindTargets(ctx Context) []*entity.Entity {
	return []*entity.Entity{e.victim}
}

// --- ПРЕДМЕТЫ ---

// PickUp - подбор всего, что лежит под инициатором.
type PickUp struct {
	baseEvent
}

func NewPickUp(actor *entity.Entity) *PickUp {
	return &PickUp{baseEvent: baseEvent{actor: actor}}
}

func (*PickUp) Kind() EventKind { return EventPickUp }

func (e *PickUp) FindTargets(ctx Context) []*entity.Entity {
	tile := e.actorTile(ctx)
	if tile == nil {
		return nil
	}
	// Копия: правила исполнения будут снимать предметы с клетки.
	return append([]*entity.Entity(nil), tile.Items()...)
}

// Equip - надеть предмет из инвентаря.
type Equip struct {
	baseEvent
	item *entity.Entity
}

func NewEquip(actor, item *entity.Entity) *Equip {
	return &Equip{baseEvent: baseEvent{actor: actor}, item: item}
}

func (*Equip) Kind() EventKind { return EventEquip }

func (e *Equip) Item() *entity.Entity { return e.item }

func (e *Equip) FindTargets(ctx Context) []*entity.Entity {
	return []*entity.Entity{e.item}
}

// Unequip - снять надетый предмет.
type Unequip struct {
	baseEvent
	item *entity.Entity
}

func NewUnequip(actor, item *entity.Entity) *Unequip {
	return &Unequip{baseEvent: baseEvent{actor: actor}, item: item}
}

func (*Unequip) Kind() EventKind { return EventUnequip }

func (e *Unequip) Item() *entity.Entity { return e.item }

func (e *Unequip) FindTargets(ctx Context) []*entity.Entity {
	return []*entity.Entity{e.item}
}

// --- ПЕРЕХОДЫ МЕЖДУ КАРТАМИ ---

// Ascend - подняться по лестнице, на которой стоит инициатор.
type Ascend struct {
	baseEvent
}

func NewAscend(actor *entity.Entity) *Ascend {
	return &Ascend{baseEvent: baseEvent{actor: actor}}
}

func (*Ascend) Kind() EventKind { return EventAscend }

func (e *Ascend) FindTargets(ctx Context) []*entity.Entity {
	return portalTarget(ctx, &e.baseEvent, entity.ImplPortalUp)
}

// Descend - спуститься по лестнице.
type Descend struct {
	baseEvent
}

func NewDescend(actor *entity.Entity) *Descend {
	return &Descend{baseEvent: baseEvent{actor: actor}}
}

func (*Descend) Kind() EventKind { return EventDescend }

func (e *Descend) FindTargets(ctx Context) []*entity.Entity {
	return portalTarget(ctx, &e.baseEvent, entity.ImplPortalDown)
}

func portalTarget(ctx Context, e *baseEvent, impl entity.Impl) []*entity.Entity {
	tile := e.actorTile(ctx)
	if tile == nil {
		return nil
	}
	arch := tile.Architecture()
	if arch == nil || !arch.Has(entity.KindPortal) {
		return nil
	}
	if arch.Portal().Impl() != impl {
		return nil
	}
	return []*entity.Entity{arch}
}
