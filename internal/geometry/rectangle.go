package geometry

// Rectangle - прямоугольник на сетке тайлов. Поскольку мы работаем с
// тайлами, а не с координатами, все края ВКЛЮЧИТЕЛЬНЫ; половина смысла
// этого типа - спрятать все +1/-1, которые из этого следуют.
// Начало координат - левый верхний угол.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

func (r Rectangle) Top() int    { return r.TopLeft.Y }
func (r Rectangle) Bottom() int { return r.TopLeft.Y + r.Size.Height - 1 }
func (r Rectangle) Left() int   { return r.TopLeft.X }
func (r Rectangle) Right() int  { return r.TopLeft.X + r.Size.Width - 1 }

func (r Rectangle) Width() int  { return r.Size.Width }
func (r Rectangle) Height() int { return r.Size.Height }
func (r Rectangle) Area() int   { return r.Size.Area() }

// Contains сообщает, лежит ли точка внутри прямоугольника.
func (r Rectangle) Contains(p Point) bool {
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Top() <= p.Y && p.Y <= r.Bottom()
}

// ContainsRect сообщает, лежит ли other целиком внутри r.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return r.Top() <= other.Top() &&
		r.Bottom() >= other.Bottom() &&
		r.Left() <= other.Left() &&
		r.Right() >= other.Right()
}

// Overlaps сообщает, есть ли у прямоугольников хоть один общий тайл.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Left() <= other.Right() && r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() && r.Bottom() >= other.Top()
}

// IterPoints перечисляет все тайлы прямоугольника в построчном порядке.
func (r Rectangle) IterPoints() []Point {
	out := make([]Point, 0, r.Area())
	for y := r.Top(); y <= r.Bottom(); y++ {
		for x := r.Left(); x <= r.Right(); x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// RangeWidth возвращает все x-координаты в пределах ширины.
func (r Rectangle) RangeWidth() []int {
	out := make([]int, 0, r.Width())
	for x := r.Left(); x <= r.Right(); x++ {
		out = append(out, x)
	}
	return out
}

// RangeHeight возвращает все y-координаты в пределах высоты.
func (r Rectangle) RangeHeight() []int {
	out := make([]int, 0, r.Height())
	for y := r.Top(); y <= r.Bottom(); y++ {
		out = append(out, y)
	}
	return out
}

// --- ПЕРЕКРОЙКА КРАЕВ (для разбиения регионов генератором) ---

// WithTop возвращает копию с новым верхним краем.
func (r Rectangle) WithTop(top int) Rectangle {
	return Rectangle{
		TopLeft: Point{X: r.Left(), Y: top},
		Size:    NewSize(r.Width(), r.Bottom()-top+1),
	}
}

// WithBottom возвращает копию с новым нижним краем.
func (r Rectangle) WithBottom(bottom int) Rectangle {
	return Rectangle{
		TopLeft: r.TopLeft,
		Size:    NewSize(r.Width(), bottom-r.Top()+1),
	}
}

// WithLeft возвращает копию с новым левым краем.
func (r Rectangle) WithLeft(left int) Rectangle {
	return Rectangle{
		TopLeft: Point{X: left, Y: r.Top()},
		Size:    NewSize(r.Right()-left+1, r.Height()),
	}
}

// WithRight возвращает копию с новым правым краем.
func (r Rectangle) WithRight(right int) Rectangle {
	return Rectangle{
		TopLeft: r.TopLeft,
		Size:    NewSize(right-r.Left()+1, r.Height()),
	}
}

// XSpan и YSpan - проекции прямоугольника на оси.
func (r Rectangle) XSpan() Span { return Span{Lo: r.Left(), Hi: r.Right()} }
func (r Rectangle) YSpan() Span { return Span{Lo: r.Top(), Hi: r.Bottom()} }
