package gamemap

import (
	"errors"
	"fmt"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/pkg/logger"
)

// ErrNotPlaced возвращается, когда сущности нет на карте. Это штатная
// ситуация: предмет могли только что подобрать.
var ErrNotPlaced = errors.New("entity is not placed on the map")

// Map - сетка клеток фиксированного размера с индексом позиций.
// Карта не владеет жизнью сущностей: снятие с карты не уничтожает их.
type Map struct {
	size geometry.Size
	rect geometry.Rectangle
	rows [][]*Tile

	positions map[*entity.Entity]geometry.Point

	// Игрок на карте ровно один или его нет вовсе.
	player *entity.Entity
	// Порталы по имени карты назначения; нужен миграции между картами.
	portals map[string]*entity.Entity
}

func New(size geometry.Size) *Map {
	m := &Map{
		size:      size,
		rect:      size.ToRect(geometry.Origin()),
		positions: make(map[*entity.Entity]geometry.Point),
		portals:   make(map[string]*entity.Entity),
	}
	m.rows = make([][]*Tile, size.Height)
	for y := range m.rows {
		row := make([]*Tile, size.Width)
		for x := range row {
			row[x] = &Tile{position: geometry.Point{X: x, Y: y}}
		}
		m.rows[y] = row
	}
	return m
}

func (m *Map) Size() geometry.Size      { return m.size }
func (m *Map) Rect() geometry.Rectangle { return m.rect }

func (m *Map) Contains(p geometry.Point) bool { return m.rect.Contains(p) }

// Tile возвращает клетку; выход за границы - ошибка программиста.
func (m *Map) Tile(p geometry.Point) *Tile {
	if !m.Contains(p) {
		panic(fmt.Sprintf("point %s is outside the map %s", p, m.size))
	}
	return m.rows[p.Y][p.X]
}

// Rows отдает клетки в стабильном построчном порядке. От него зависят
// детерминированная отрисовка и обходы ИИ.
func (m *Map) Rows() [][]*Tile { return m.rows }

// Player возвращает игрока на этой карте или nil.
func (m *Map) Player() *entity.Entity { return m.player }

// Portal возвращает портал, ведущий на карту с данным именем, или nil.
func (m *Map) Portal(destination string) *entity.Entity {
	return m.portals[destination]
}

// Place ставит сущность на клетку. Сущность не должна уже стоять где-то
// на этой карте. Побочные эффекты: обновляются указатель на игрока и
// индекс порталов.
func (m *Map) Place(e *entity.Entity, p geometry.Point) {
	if prev, ok := m.positions[e]; ok {
		panic(fmt.Sprintf("entity %s is already placed at %s", e, prev))
	}
	m.Tile(p).attach(e)
	m.positions[e] = p
	m.index(e)
}

// Move переставляет сущность на новую клетку. Инварианты обеих клеток
// должны соблюдаться до и после.
func (m *Map) Move(e *entity.Entity, p geometry.Point) {
	old, ok := m.positions[e]
	if !ok {
		panic(fmt.Sprintf("cannot move %s: not placed", e))
	}
	m.Tile(old).detach(e)
	m.Tile(p).attach(e)
	m.positions[e] = p
}

// Remove снимает сущность с карты, не уничтожая ее: подобранный предмет
// уезжает в инвентарь, а не в небытие.
func (m *Map) Remove(e *entity.Entity) error {
	p, ok := m.positions[e]
	if !ok {
		return fmt.Errorf("remove %s: %w", e, ErrNotPlaced)
	}
	m.Tile(p).detach(e)
	delete(m.positions, e)
	m.unindex(e)
	return nil
}

// Find возвращает клетку, на которой стоит сущность. Вызывающие, которые
// могут гоняться со снятием с карты, обязаны обработать ошибку, а не
// считать сущность вечно живой.
func (m *Map) Find(e *entity.Entity) (*Tile, error) {
	p, ok := m.positions[e]
	if !ok {
		return nil, fmt.Errorf("find %s: %w", e, ErrNotPlaced)
	}
	return m.Tile(p), nil
}

func (m *Map) index(e *entity.Entity) {
	if isPlayer(e) {
		if m.player != nil && m.player != e {
			panic(fmt.Sprintf("map already has a player: %s", m.player))
		}
		m.player = e
	}
	if e.Has(entity.KindPortal) {
		if dest := e.Portal().Destination(); dest != "" {
			m.portals[dest] = e
		} else {
			logger.Log.WithField("component", "gamemap").
				Debug("portal placed without a destination")
		}
	}
}

func (m *Map) unindex(e *entity.Entity) {
	if m.player == e {
		m.player = nil
	}
	if e.Has(entity.KindPortal) {
		if dest := e.Portal().Destination(); dest != "" && m.portals[dest] == e {
			delete(m.portals, dest)
		}
	}
}

func isPlayer(e *entity.Entity) bool {
	if !e.Has(entity.KindActor) {
		return false
	}
	return e.Actor().Impl() == entity.ImplPlayerBrain
}
