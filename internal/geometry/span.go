package geometry

import (
	"fmt"
	"math"
)

// Span - одномерный интервал тайлов, края включительны.
// Используется в основном окном просмотра: видимая полоса карты по одной
// оси - это Span, который двигается за игроком.
type Span struct {
	Lo int
	Hi int
}

// NewSpan проверяет порядок краев.
func NewSpan(lo, hi int) Span {
	if hi < lo {
		panic(fmt.Sprintf("inverted span: [%d, %d]", lo, hi))
	}
	return Span{Lo: lo, Hi: hi}
}

func (s Span) Width() int {
	return s.Hi - s.Lo + 1
}

func (s Span) Contains(p int) bool {
	return s.Lo <= p && p <= s.Hi
}

// Shift возвращает интервал, сдвинутый на d.
func (s Span) Shift(d int) Span {
	return Span{Lo: s.Lo + d, Hi: s.Hi + d}
}

// ShiftIntoView возвращает минимальный сдвиг интервала, при котором точка p
// отстоит от обоих краев хотя бы на margin. Если условие уже выполнено,
// интервал возвращается как есть. Ширина не меняется.
func (s Span) ShiftIntoView(p, margin int) Span {
	if margin*2 >= s.Width() {
		panic(fmt.Sprintf("margin %d too large for span of width %d", margin, s.Width()))
	}

	if p-s.Lo < margin {
		return s.Shift(p - margin - s.Lo)
	}
	if s.Hi-p < margin {
		return s.Shift(p + margin - s.Hi)
	}
	return s
}

// Scale меняет ширину интервала на ровно width, сохраняя относительное
// положение опорной точки pivot. Если pivot левее середины, ближняя
// (левая) доля округляется вверх.
func (s Span) Scale(width, pivot int) Span {
	if width <= 0 {
		panic(fmt.Sprintf("non-positive span width: %d", width))
	}

	// Доля интервала слева от опорной точки.
	frac := float64(pivot-s.Lo) / float64(s.Width())
	left := frac * float64(width)

	var leftCells int
	if frac < 0.5 {
		leftCells = int(math.Ceil(left))
	} else {
		leftCells = int(left)
	}
	if leftCells >= width {
		leftCells = width - 1
	}

	lo := pivot - leftCells
	return Span{Lo: lo, Hi: lo + width - 1}
}
