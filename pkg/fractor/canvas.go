// Package fractor генерирует карты. "Fractor" - агентное существительное
// от "фрактала": объект, порождающий карты в определенном стиле.
// Генератор рисует на черновике (MapCanvas), который затем запекается в
// живую карту.
package fractor

import (
	"fmt"
	"sort"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
)

// стадийная ячейка: обычно тип (сущность создастся при запекании), но
// иногда готовая сущность - портал с назначением или развалина со
// случайной долей здоровья.
type stagedArch struct {
	typ *entity.Type
	ent *entity.Entity
}

func (s stagedArch) entityType() *entity.Type {
	if s.ent != nil {
		return s.ent.Type()
	}
	return s.typ
}

// MapCanvas - черновик карты: постановочные сетки архитектуры, предметов
// и существ плюс производное множество проходимых клеток.
type MapCanvas struct {
	rect geometry.Rectangle

	arch      [][]stagedArch
	items     [][][]*entity.Type
	creatures [][]*entity.Type

	floorSpaces map[geometry.Point]struct{}
}

// NewMapCanvas создает черновик, залитый пещерной стеной.
func NewMapCanvas(size geometry.Size) *MapCanvas {
	c := &MapCanvas{
		rect:        size.ToRect(geometry.Origin()),
		floorSpaces: make(map[geometry.Point]struct{}),
	}
	c.arch = make([][]stagedArch, size.Height)
	c.items = make([][][]*entity.Type, size.Height)
	c.creatures = make([][]*entity.Type, size.Height)
	for y := 0; y < size.Height; y++ {
		c.arch[y] = make([]stagedArch, size.Width)
		c.items[y] = make([][]*entity.Type, size.Width)
		c.creatures[y] = make([]*entity.Type, size.Width)
		for x := 0; x < size.Width; x++ {
			c.arch[y][x] = stagedArch{typ: entity.CaveWall}
		}
	}
	return c
}

func (c *MapCanvas) Rect() geometry.Rectangle { return c.rect }

// Clear заливает весь черновик одним типом архитектуры.
func (c *MapCanvas) Clear(t *entity.Type) {
	for _, p := range c.rect.IterPoints() {
		c.SetArchitecture(p, t)
	}
}

// SetArchitecture ставит тип архитектуры в клетку и синхронизирует
// множество проходимых клеток.
func (c *MapCanvas) SetArchitecture(p geometry.Point, t *entity.Type) {
	c.setArch(p, stagedArch{typ: t})
}

// SetArchitectureEntity ставит готовую сущность: портал, знающий свое
// назначение, или развалину с уже брошенной долей здоровья.
func (c *MapCanvas) SetArchitectureEntity(p geometry.Point, e *entity.Entity) {
	c.setArch(p, stagedArch{ent: e})
}

func (c *MapCanvas) setArch(p geometry.Point, s stagedArch) {
	if !c.rect.Contains(p) {
		panic(fmt.Sprintf("point %s is outside the canvas %s", p, c.rect.Size))
	}
	c.arch[p.Y][p.X] = s

	if impl, ok := s.entityType().Impl(entity.KindPhysics); ok && impl == entity.ImplEmpty {
		c.floorSpaces[p] = struct{}{}
	} else {
		delete(c.floorSpaces, p)
	}
}

// Architecture возвращает тип архитектуры, стоящий в клетке.
func (c *MapCanvas) Architecture(p geometry.Point) *entity.Type {
	return c.arch[p.Y][p.X].entityType()
}

func (c *MapCanvas) AddItem(p geometry.Point, t *entity.Type) {
	c.items[p.Y][p.X] = append(c.items[p.Y][p.X], t)
}

func (c *MapCanvas) SetCreature(p geometry.Point, t *entity.Type) {
	c.creatures[p.Y][p.X] = t
}

// FloorSpaces возвращает проходимые клетки в построчном порядке: выборка
// по ним с сеяным генератором детерминирована.
func (c *MapCanvas) FloorSpaces() []geometry.Point {
	points := make([]geometry.Point, 0, len(c.floorSpaces))
	for p := range c.floorSpaces {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// ToMap запекает черновик: по сущности на каждую постановочную клетку.
func (c *MapCanvas) ToMap() *gamemap.Map {
	m := gamemap.New(c.rect.Size)
	for _, p := range c.rect.IterPoints() {
		staged := c.arch[p.Y][p.X]
		if staged.ent != nil {
			m.Place(staged.ent, p)
		} else {
			m.Place(staged.typ.New(), p)
		}
		for _, itemType := range c.items[p.Y][p.X] {
			m.Place(itemType.New(), p)
		}
		if creatureType := c.creatures[p.Y][p.X]; creatureType != nil {
			m.Place(creatureType.New(), p)
		}
	}
	return m
}
