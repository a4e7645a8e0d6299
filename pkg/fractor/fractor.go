package fractor

import (
	"fmt"
	"math/rand"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/pkg/logger"
)

// Strategy - стратегия генерации: заполняет черновик в своем стиле.
type Strategy interface {
	// Generate рисует на черновике.
	Generate()
	Canvas() *MapCanvas
	Rand() *rand.Rand
}

// base - общая часть всех стратегий: черновик, рабочая область и сеяный
// генератор случайностей.
type base struct {
	canvas *MapCanvas
	region geometry.Rectangle
	rng    *rand.Rand
}

func newBase(rng *rand.Rand, size geometry.Size) base {
	canvas := NewMapCanvas(size)
	return base{canvas: canvas, region: canvas.Rect(), rng: rng}
}

func (b *base) Canvas() *MapCanvas { return b.canvas }
func (b *base) Rand() *rand.Rand   { return b.rng }

// GenerateMap - то, что вы скорее всего хотите вызвать: генерирует
// ландшафт, разбрасывает обитателей и добро, ставит лестницы и запекает
// черновик в карту. up и down - имена карт, на которые ведут лестницы.
func GenerateMap(s Strategy, up, down string) *gamemap.Map {
	s.Generate()
	placeStuff(s)

	if up != "" {
		placePortal(s, entity.StairsUp.New(entity.PortalUp{Destination: up}))
	}
	if down != "" {
		placePortal(s, entity.StairsDown.New(entity.PortalDown{Destination: down}))
	}

	return s.Canvas().ToMap()
}

// Постоянный набор пожитков этажа: шесть различных клеток. Черновик,
// которому не хватает места, - ошибка генератора, а не ситуация для
// обработки.
func placeStuff(s Strategy) {
	floor := s.Canvas().FloorSpaces()
	if len(floor) < 6 {
		panic(fmt.Sprintf("only %d open spaces, the floor roster needs 6", len(floor)))
	}

	points := samplePoints(s.Rand(), floor, 6)
	s.Canvas().SetCreature(points[0], entity.Salamango)
	s.Canvas().AddItem(points[1], entity.Armor)
	s.Canvas().AddItem(points[2], entity.Potion)
	s.Canvas().AddItem(points[3], entity.Potion)
	s.Canvas().AddItem(points[4], entity.Gem)
	s.Canvas().AddItem(points[5], entity.Crate)

	logger.Log.WithFields(map[string]interface{}{
		"component":    "fractor",
		"floor_spaces": len(floor),
	}).Debug("scattered the floor roster")
}

func placePortal(s Strategy, portal *entity.Entity) {
	floor := s.Canvas().FloorSpaces()
	if len(floor) == 0 {
		panic("can't place a portal with no open spaces")
	}
	p := floor[s.Rand().Intn(len(floor))]
	s.Canvas().SetArchitectureEntity(p, portal)
}

// samplePoints выбирает до n различных точек.
func samplePoints(rng *rand.Rand, points []geometry.Point, n int) []geometry.Point {
	if n > len(points) {
		n = len(points)
	}
	out := make([]geometry.Point, 0, n)
	for _, i := range rng.Perm(len(points))[:n] {
		out = append(out, points[i])
	}
	return out
}
