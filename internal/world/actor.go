package world

import (
	"fmt"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/rules"
)

// act спрашивает у актора одно действие за ход и ставит его в очередь.
func (w *World) act(actor *entity.Entity) {
	switch impl := actor.Actor().Impl(); impl {
	case entity.ImplPlayerBrain:
		// Действия игрока приходят из очереди ввода; обычно она уже
		// выгребена в начале хода.
		if len(w.playerActions) > 0 {
			action := w.playerActions[0]
			w.playerActions = w.playerActions[1:]
			w.QueueImmediate(action)
		}
	case entity.ImplGenericAI:
		w.actGenericAI(actor)
	default:
		panic(fmt.Sprintf("unknown actor impl %s", impl))
	}
}

// actGenericAI - поведение монстра: бьет игрока, когда тот рядом, иначе
// жадно идет к нему, иначе слоняется.
func (w *World) actGenericAI(actor *entity.Entity) {
	tile, err := w.current.Find(actor)
	if err != nil {
		return
	}
	pos := tile.Position()

	player := w.current.Player()
	if player == nil {
		w.wander(actor)
		return
	}
	playerTile, err := w.current.Find(player)
	if err != nil {
		w.wander(actor)
		return
	}
	playerPos := playerTile.Position()

	for _, dir := range geometry.Directions {
		if pos.Step(dir) == playerPos {
			w.QueueEvent(rules.NewMeleeAttack(actor, dir))
			return
		}
	}

	if dir, ok := stepToward(pos, playerPos); ok && w.walkable(pos.Step(dir)) {
		w.QueueEvent(rules.NewWalk(actor, dir))
		return
	}
	w.wander(actor)
}

func (w *World) wander(actor *entity.Entity) {
	dir := geometry.Directions[w.rng.Intn(len(geometry.Directions))]
	// Шаг в стену просто отменится правилами; это нормальный исход.
	w.QueueEvent(rules.NewWalk(actor, dir))
}

func (w *World) walkable(p geometry.Point) bool {
	if !w.current.Contains(p) {
		return false
	}
	tile := w.current.Tile(p)
	arch := tile.Architecture()
	if arch == nil || arch.Physics().Blocks() {
		return false
	}
	return tile.Creature() == nil
}

// stepToward выбирает направление по знакам разности координат.
func stepToward(from, to geometry.Point) (geometry.Direction, bool) {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)
	for _, dir := range geometry.Directions {
		ddx, ddy := dir.Delta()
		if ddx == dx && ddy == dy {
			return dir, true
		}
	}
	return 0, false
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
