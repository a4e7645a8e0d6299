package fractor

import (
	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
)

// minimumRoomSize - меньше комнату не рисуем: интерьер 3x3 плюс стены.
var minimumRoomSize = geometry.Size{Width: 5, Height: 5}

// room - еще не нарисованная комната. Размеры слегка случайны в пределах
// отведенной области.
type room struct {
	rect geometry.Rectangle
}

func newRoom(s Strategy, region geometry.Rectangle) room {
	rng := s.Rand()
	size := geometry.Size{
		Width:  RandomNormalRange(rng, minimumRoomSize.Width, region.Width()),
		Height: RandomNormalRange(rng, minimumRoomSize.Height, region.Height()),
	}
	left := region.Left() + rng.Intn(region.Width()-size.Width+1)
	top := region.Top() + rng.Intn(region.Height()-size.Height+1)
	return room{rect: geometry.Rectangle{
		TopLeft: geometry.Point{X: left, Y: top},
		Size:    size,
	}}
}

// drawTo рисует комнату: пол внутри, стены по периметру.
func (r room) drawTo(canvas *MapCanvas) {
	if !canvas.Rect().ContainsRect(r.rect) {
		panic("room does not fit on the canvas")
	}

	for _, p := range r.rect.IterPoints() {
		canvas.SetArchitecture(p, entity.Floor)
	}

	// Верх и низ.
	for _, x := range r.rect.RangeWidth() {
		canvas.SetArchitecture(geometry.Point{X: x, Y: r.rect.Top()}, entity.Wall)
		canvas.SetArchitecture(geometry.Point{X: x, Y: r.rect.Bottom()}, entity.Wall)
	}
	// Бока; углы зацепим второй раз, не страшно.
	for _, y := range r.rect.RangeHeight() {
		canvas.SetArchitecture(geometry.Point{X: r.rect.Left(), Y: y}, entity.Wall)
		canvas.SetArchitecture(geometry.Point{X: r.rect.Right(), Y: y}, entity.Wall)
	}
}

// center - примерный центр комнаты.
func (r room) center() geometry.Point {
	return geometry.Point{
		X: r.rect.Left() + r.rect.Width()/2,
		Y: r.rect.Top() + r.rect.Height()/2,
	}
}
