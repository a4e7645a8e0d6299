// Package gamemap хранит пространственный индекс сущностей: сетку клеток
// и позиции. Вся миграция сущностей по карте обязана идти через
// Place/Move/Remove, иначе индекс и клетки разойдутся.
package gamemap

import (
	"fmt"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
)

// Tile - одна клетка карты. Слоты по слоям: ровно одна архитектура, не
// больше одного существа, сколько угодно предметов. Второй жилец в
// занятом слоте - ошибка программиста.
type Tile struct {
	position     geometry.Point
	architecture *entity.Entity
	creature     *entity.Entity
	items        []*entity.Entity
}

func (t *Tile) Position() geometry.Point { return t.position }

func (t *Tile) Architecture() *entity.Entity { return t.architecture }

func (t *Tile) Creature() *entity.Entity { return t.creature }

// Items возвращает предметы в порядке появления на клетке.
func (t *Tile) Items() []*entity.Entity { return t.items }

// Things перечисляет жильцов клетки сверху вниз: существо, предметы,
// архитектура. Порядок совпадает с порядком отрисовки.
func (t *Tile) Things() []*entity.Entity {
	things := make([]*entity.Entity, 0, len(t.items)+2)
	if t.creature != nil {
		things = append(things, t.creature)
	}
	things = append(things, t.items...)
	if t.architecture != nil {
		things = append(things, t.architecture)
	}
	return things
}

func (t *Tile) attach(e *entity.Entity) {
	switch e.Layer() {
	case entity.LayerArchitecture:
		if t.architecture != nil {
			panic(fmt.Sprintf(
				"tile %s already has architecture %s, refusing %s",
				t.position, t.architecture, e))
		}
		t.architecture = e
	case entity.LayerCreature:
		if t.creature != nil {
			panic(fmt.Sprintf(
				"tile %s already has creature %s, refusing %s",
				t.position, t.creature, e))
		}
		t.creature = e
	case entity.LayerItem:
		t.items = append(t.items, e)
	default:
		panic(fmt.Sprintf("unknown layer %s", e.Layer()))
	}
}

func (t *Tile) detach(e *entity.Entity) {
	switch e.Layer() {
	case entity.LayerArchitecture:
		if t.architecture != e {
			panic(fmt.Sprintf("tile %s does not hold architecture %s", t.position, e))
		}
		t.architecture = nil
	case entity.LayerCreature:
		if t.creature != e {
			panic(fmt.Sprintf("tile %s does not hold creature %s", t.position, e))
		}
		t.creature = nil
	case entity.LayerItem:
		for i, item := range t.items {
			if item == e {
				t.items = append(t.items[:i], t.items[i+1:]...)
				return
			}
		}
		panic(fmt.Sprintf("tile %s does not hold item %s", t.position, e))
	default:
		panic(fmt.Sprintf("unknown layer %s", e.Layer()))
	}
}
