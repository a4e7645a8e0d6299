package geometry

import "fmt"

// --- НАПРАВЛЕНИЯ ---

// Direction - одно из восьми направлений на сетке.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Смещения по осям для каждого направления.
var directionDeltas = [...][2]int{
	Up:        {0, -1},
	Down:      {0, 1},
	Left:      {-1, 0},
	Right:     {1, 0},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
}

var directionNames = [...]string{
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	UpLeft:    "up-left",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	DownRight: "down-right",
}

// Directions перечисляет все восемь направлений в стабильном порядке.
var Directions = []Direction{
	Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight,
}

// Cardinal перечисляет четыре основных направления (для вариантов игры
// без диагонального движения).
var Cardinal = []Direction{Up, Down, Left, Right}

func (d Direction) Delta() (dx, dy int) {
	return directionDeltas[d][0], directionDeltas[d][1]
}

func (d Direction) String() string {
	return directionNames[d]
}

// --- ТОЧКИ ---

type Point struct {
	X int
	Y int
}

func Origin() Point {
	return Point{0, 0}
}

// Shift возвращает новую точку со смещением (структуры передаются по значению).
func (p Point) Shift(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает соседнюю точку в заданном направлении.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Neighbors возвращает все восемь соседей точки, включая лежащие за
// границами любой карты; фильтрация - забота вызывающего.
func (p Point) Neighbors() []Point {
	out := make([]Point, 0, 8)
	for _, d := range Directions {
		out = append(out, p.Step(d))
	}
	return out
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// --- РАЗМЕРЫ ---

type Size struct {
	Width  int
	Height int
}

// NewSize проверяет знаки: отрицательный размер - ошибка программиста.
func NewSize(width, height int) Size {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("negative size: %dx%d", width, height))
	}
	return Size{Width: width, Height: height}
}

func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ToRect превращает размер в прямоугольник с заданным началом координат.
func (s Size) ToRect(origin Point) Rectangle {
	return Rectangle{TopLeft: origin, Size: s}
}
