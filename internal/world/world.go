// Package world связывает все воедино: активную карту, очередь намерений
// игрока, событийный конвейер и пошаговый цикл ходов.
package world

import (
	"fmt"
	"math/rand"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/rules"
	"github.com/eevee/flax/pkg/logger"
)

// MapBuilder генерирует карту этажа. up и down - имена карт, на которые
// должны вести лестницы; пустая строка - лестницы нет.
type MapBuilder func(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map

// Floor - один этаж плана мира.
type Floor struct {
	Name  string
	Build MapBuilder
}

// World владеет всеми картами и продвигает симуляцию. Карты этажей
// генерируются лениво: при первом проходе через портал.
type World struct {
	cfg      *Config
	registry *rules.Registry
	rng      *rand.Rand

	floors      map[string]Floor
	planOrder   []string
	maps        map[string]*gamemap.Map
	current     *gamemap.Map
	currentName string

	player *entity.Entity

	playerActions []rules.Event
	events        eventDeque

	log *MessageLog
}

// New создает мир по плану этажей. Первый этаж плана генерируется сразу,
// игрок ставится на свободную клетку.
func New(cfg *Config, plan []Floor) *World {
	if len(plan) == 0 {
		panic("world needs at least one floor")
	}

	w := &World{
		cfg:      cfg,
		registry: rules.NewGameRegistry(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		floors:   make(map[string]Floor, len(plan)),
		maps:     make(map[string]*gamemap.Map),
		log:      NewMessageLog(cfg.MessageLogSize),
	}
	for _, floor := range plan {
		w.floors[floor.Name] = floor
		w.planOrder = append(w.planOrder, floor.Name)
	}

	first := plan[0].Name
	w.current = w.ensureMap(first)
	w.currentName = first

	w.player = entity.Player.New()
	w.current.Place(w.player, w.spawnPoint(w.current))

	logger.Log.WithFields(map[string]interface{}{
		"component": "world",
		"floor":     first,
		"seed":      cfg.Seed,
	}).Info("world created")

	return w
}

func (w *World) Player() *entity.Entity { return w.player }

func (w *World) Log() *MessageLog { return w.log }

// CurrentFloor возвращает имя активного этажа.
func (w *World) CurrentFloor() string { return w.currentName }

// --- rules.Context ---

func (w *World) Map() *gamemap.Map { return w.current }

func (w *World) QueueEvent(ev rules.Event) { w.events.PushBack(ev) }

func (w *World) QueueImmediate(ev rules.Event) { w.events.PushFront(ev) }

func (w *World) Announce(message string) { w.log.Add(message) }

func (w *World) Rand() *rand.Rand { return w.rng }

// Travel переносит игрока на карту с данным именем, генерируя ее при
// необходимости. Точка прибытия - портал, ведущий обратно.
func (w *World) Travel(destination string) {
	dest := w.ensureMap(destination)

	if err := w.current.Remove(w.player); err != nil {
		panic(fmt.Sprintf("traveling player is not on the map: %v", err))
	}

	from := w.currentName
	w.current = dest
	w.currentName = destination

	arrival := w.arrivalPoint(dest, from)
	dest.Place(w.player, arrival)

	logger.Log.WithFields(map[string]interface{}{
		"component": "world",
		"from":      from,
		"floor":     destination,
	}).Info("player changed floors")
}

// --- ХОД ---

// PushPlayerAction ставит намерение игрока в очередь ввода.
func (w *World) PushPlayerAction(ev rules.Event) {
	w.playerActions = append(w.playerActions, ev)
}

// PlayerActionFromDirection переводит нажатие направления в намерение:
// по существу бьем, закрытое открываемое открываем, иначе шагаем.
// За границей карты намерения нет.
func (w *World) PlayerActionFromDirection(dir geometry.Direction) rules.Event {
	tile, err := w.current.Find(w.player)
	if err != nil {
		return nil
	}
	dest := tile.Position().Step(dir)
	if !w.current.Contains(dest) {
		return nil
	}

	destTile := w.current.Tile(dest)
	if destTile.Creature() != nil {
		return rules.NewMeleeAttack(w.player, dir)
	}
	if arch := destTile.Architecture(); arch != nil && arch.Has(entity.KindOpenable) {
		if !arch.Openable().IsOpen() {
			return rules.NewOpen(w.player, dir)
		}
	}
	return rules.NewWalk(w.player, dir)
}

// Advance проигрывает один ход: сперва отложенное действие игрока, затем
// по одному действию каждого актора на карте.
func (w *World) Advance() {
	// Действие игрока идет первым, в голову очереди.
	if len(w.playerActions) > 0 {
		action := w.playerActions[0]
		w.playerActions = w.playerActions[1:]
		w.QueueImmediate(action)
		w.drainEvents()
	}

	// Снимок акторов до обхода: эффекты правил двигают существ по
	// клеткам, и живую структуру обходить нельзя.
	var actors []*entity.Entity
	for _, row := range w.current.Rows() {
		for _, tile := range row {
			if c := tile.Creature(); c != nil && c.Has(entity.KindActor) {
				actors = append(actors, c)
			}
		}
	}

	for _, actor := range actors {
		// Актор мог умереть или уехать с карты раньше своего хода.
		if _, err := w.current.Find(actor); err != nil {
			continue
		}
		w.act(actor)
		w.drainEvents()
	}
}

func (w *World) drainEvents() {
	for {
		ev, ok := w.events.PopFront()
		if !ok {
			return
		}
		w.registry.Fire(w, ev)
	}
}

// --- ВНУТРЕННЕЕ ---

func (w *World) ensureMap(name string) *gamemap.Map {
	if m, ok := w.maps[name]; ok {
		return m
	}
	floor, ok := w.floors[name]
	if !ok {
		panic(fmt.Sprintf("floor plan has no floor named %q", name))
	}

	size := geometry.Size{Width: w.cfg.MapWidth, Height: w.cfg.MapHeight}
	m := floor.Build(w.rng, size, w.floorAbove(name), w.floorBelow(name))
	w.maps[name] = m

	logger.Log.WithFields(map[string]interface{}{
		"component": "world",
		"floor":     name,
	}).Info("floor generated")
	return m
}

// Этаж i соединен лестницами с этажами i±1 в порядке плана.

func (w *World) floorAbove(name string) string {
	for i, n := range w.planOrder {
		if n == name && i > 0 {
			return w.planOrder[i-1]
		}
	}
	return ""
}

func (w *World) floorBelow(name string) string {
	for i, n := range w.planOrder {
		if n == name && i+1 < len(w.planOrder) {
			return w.planOrder[i+1]
		}
	}
	return ""
}

// spawnPoint находит первую проходимую клетку без существа; построчный
// обход делает выбор детерминированным.
func (w *World) spawnPoint(m *gamemap.Map) geometry.Point {
	for _, row := range m.Rows() {
		for _, tile := range row {
			arch := tile.Architecture()
			if arch == nil || arch.Physics().Blocks() {
				continue
			}
			if tile.Creature() != nil {
				continue
			}
			return tile.Position()
		}
	}
	panic("map has no walkable tile to spawn on")
}

// arrivalPoint - клетка портала, ведущего обратно на карту from.
func (w *World) arrivalPoint(m *gamemap.Map, from string) geometry.Point {
	portal := m.Portal(from)
	if portal == nil {
		logger.Log.WithFields(map[string]interface{}{
			"component": "world",
			"from":      from,
		}).Warn("destination map has no portal back, spawning instead")
		return w.spawnPoint(m)
	}
	tile, err := m.Find(portal)
	if err != nil {
		return w.spawnPoint(m)
	}
	if tile.Creature() != nil {
		return w.spawnPoint(m)
	}
	return tile.Position()
}

// --- ОЧЕРЕДЬ СОБЫТИЙ ---

// eventDeque - очередь с обоих концов: обычные события встают в хвост,
// причинно-зависимые продолжения - в голову.
type eventDeque struct {
	events []rules.Event
}

func (d *eventDeque) PushBack(ev rules.Event) {
	d.events = append(d.events, ev)
}

func (d *eventDeque) PushFront(ev rules.Event) {
	d.events = append([]rules.Event{ev}, d.events...)
}

func (d *eventDeque) PopFront() (rules.Event, bool) {
	if len(d.events) == 0 {
		return nil, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true
}

func (d *eventDeque) Len() int { return len(d.events) }
