package fractor

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
)

// BinaryPartitionFractor рекурсивно делит область пополам вдоль оси с
// большим запасом места, пока не наберется нужное число областей; в
// каждой рисуется комната, комнаты соединяются коридорами с дверьми.
type BinaryPartitionFractor struct {
	base
	minimumSize geometry.Size
}

// Сколько областей хотим. С меньшим числом в больших областях можно было
// бы рисовать что-то поинтереснее.
const wantedRegions = 7

func NewBinaryPartitionFractor(rng *rand.Rand, size geometry.Size, minimumSize geometry.Size) *BinaryPartitionFractor {
	if minimumSize.Width < minimumRoomSize.Width || minimumSize.Height < minimumRoomSize.Height {
		panic(fmt.Sprintf("minimum partition size %s is below the room minimum %s",
			minimumSize, minimumRoomSize))
	}
	return &BinaryPartitionFractor{
		base:        newBase(rng, size),
		minimumSize: minimumSize,
	}
}

func (f *BinaryPartitionFractor) Generate() {
	regions := f.maximallyPartition()

	rooms := make([]room, 0, len(regions))
	for _, region := range regions {
		r := newRoom(f, region)
		r.drawTo(f.canvas)
		rooms = append(rooms, r)
	}

	f.connectRooms(rooms)
}

// maximallyPartition делит область, пока областей не станет wantedRegions
// или делить станет нечего. Каждый раз делится самая большая: так сетка
// областей не вырождается в полосы.
func (f *BinaryPartitionFractor) maximallyPartition() []geometry.Rectangle {
	pending := []geometry.Rectangle{f.region}
	var done []geometry.Rectangle

	for len(pending) > 0 && len(pending)+len(done) < wantedRegions {
		sort.Slice(pending, func(i, j int) bool {
			return pending[i].Area() > pending[j].Area()
		})
		region := pending[0]
		pending = pending[1:]

		parts := f.partition(region)
		if len(parts) == 1 {
			// Область уже неделима.
			done = append(done, region)
			continue
		}
		pending = append(pending, parts...)
	}

	return append(done, pending...)
}

// partition делит область вдоль оси с большим относительным запасом
// против минимального размера.
func (f *BinaryPartitionFractor) partition(region geometry.Rectangle) []geometry.Rectangle {
	relHeight := float64(region.Height()) / float64(f.minimumSize.Height)
	relWidth := float64(region.Width()) / float64(f.minimumSize.Width)

	if relHeight < 2 && relWidth < 2 {
		// Обе половины не вместят минимум; делить нельзя.
		return []geometry.Rectangle{region}
	}

	if relHeight > relWidth {
		return f.partitionHorizontal(region)
	}
	return f.partitionVertical(region)
}

func (f *BinaryPartitionFractor) partitionHorizontal(region geometry.Rectangle) []geometry.Rectangle {
	// midpoint - последняя строка верхней половины; обе половины обязаны
	// вместить минимальный размер.
	top := region.Top() + f.minimumSize.Height - 1
	bottom := region.Bottom() - f.minimumSize.Height
	midpoint := top + f.rng.Intn(bottom-top+1)

	return []geometry.Rectangle{
		region.WithBottom(midpoint),
		region.WithTop(midpoint + 1),
	}
}

func (f *BinaryPartitionFractor) partitionVertical(region geometry.Rectangle) []geometry.Rectangle {
	// В точности как выше, только по другой оси.
	left := region.Left() + f.minimumSize.Width - 1
	right := region.Right() - f.minimumSize.Width
	midpoint := left + f.rng.Intn(right-left+1)

	return []geometry.Rectangle{
		region.WithRight(midpoint),
		region.WithLeft(midpoint + 1),
	}
}

// connectRooms прокладывает Г-образные коридоры между соседними по
// порядку комнатами. Коридор, пробивая стену комнаты, оставляет дверь.
func (f *BinaryPartitionFractor) connectRooms(rooms []room) {
	if len(rooms) < 2 {
		return
	}

	// Сортировка по центрам дает цепочку без длинных перехлестов.
	sort.Slice(rooms, func(i, j int) bool {
		ci, cj := rooms[i].center(), rooms[j].center()
		if ci.X != cj.X {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})

	for i := 0; i+1 < len(rooms); i++ {
		f.digCorridor(rooms[i].center(), rooms[i+1].center())
	}
}

func (f *BinaryPartitionFractor) digCorridor(from, to geometry.Point) {
	// Сначала по горизонтали, затем по вертикали.
	p := from
	for p.X != to.X {
		f.digCell(p)
		p = p.Shift(sign(to.X-p.X), 0)
	}
	for p.Y != to.Y {
		f.digCell(p)
		p = p.Shift(0, sign(to.Y-p.Y))
	}
	f.digCell(p)
}

func (f *BinaryPartitionFractor) digCell(p geometry.Point) {
	switch f.canvas.Architecture(p) {
	case entity.Wall:
		// Пробитая стена комнаты становится дверью.
		f.canvas.SetArchitecture(p, entity.Door)
	case entity.CaveWall:
		f.canvas.SetArchitecture(p, entity.Floor)
	}
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
