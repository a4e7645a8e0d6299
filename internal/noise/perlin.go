// Package noise реализует шум Перлина для генерации ландшафта.
//
// Идея алгоритма: если нужна случайная гладкая кривая, проще всего выбрать
// случайные значения в узлах решетки и интерполировать между ними. Шум
// Перлина - обобщение на большее число измерений: вместо случайных значений
// в каждом целочисленном узле лежит случайный единичный вектор ("градиент"),
// и ячейка решетки наклоняется к нему.
package noise

import (
	"fmt"
	"math"
	"math/rand"
)

// Максимальная размерность. Узлы решетки пакуются в uint64 по 16 бит
// на координату.
const maxDimension = 4

// smoothstep - гладкая кривая 6t^5 - 15t^4 + 10t^3 с нулевой производной
// в 0 и 1; ею интерполируем между узлами.
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp - линейная интерполяция между a и b по доле t.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// packVertex упаковывает координаты узла решетки в один ключ.
func packVertex(coords []int) uint64 {
	var key uint64
	for _, c := range coords {
		key = key<<16 | uint64(uint16(c))
	}
	return key
}

// Perlin - генератор шума для произвольной точки в [0, 1)^n.
// Детерминирован для заданного rng: все градиенты выбираются при создании.
type Perlin struct {
	resolution []int
	gradients  map[uint64][]float64
	scale      float64
}

// NewPerlin создает генератор. Аргументы - число ячеек решетки по каждой
// оси: 1 дает довольно скучный шум, большие числа - слишком дерганый;
// однозначные значения обычно в самый раз.
func NewPerlin(rng *rand.Rand, resolution ...int) *Perlin {
	dim := len(resolution)
	if dim == 0 || dim > maxDimension {
		panic(fmt.Sprintf("unsupported noise dimension: %d", dim))
	}
	for _, res := range resolution {
		if res < 1 {
			panic(fmt.Sprintf("non-positive noise resolution: %v", resolution))
		}
	}

	p := &Perlin{
		resolution: resolution,
		gradients:  make(map[uint64][]float64),
		// Диапазон сырого шума Перлина — ±sqrt(n)/2; этим множителем
		// приводим его к ±1/2, чтобы потом сдвинуть в (0, 1).
		scale: 1 / math.Sqrt(float64(dim)),
	}

	// Случайный единичный вектор в каждом узле решетки: точка на
	// поверхности единичной n-сферы - это n нормальных величин,
	// отмасштабированных к единичной длине.
	p.fillGradients(rng, make([]int, 0, dim))

	return p
}

func (p *Perlin) fillGradients(rng *rand.Rand, prefix []int) {
	if len(prefix) == len(p.resolution) {
		vec := make([]float64, len(p.resolution))
		var norm float64
		for i := range vec {
			vec[i] = rng.NormFloat64()
			norm += vec[i] * vec[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// Вырожденный вектор практически невозможен, но деление
			// на ноль недопустимо.
			vec[0] = 1
			norm = 1
		}
		for i := range vec {
			vec[i] /= norm
		}
		p.gradients[packVertex(prefix)] = vec
		return
	}

	res := p.resolution[len(prefix)]
	for c := 0; c <= res; c++ {
		p.fillGradients(rng, append(prefix, c))
	}
}

// At возвращает значение шума в точке (координаты в [0, 1)).
// Результат лежит в [0, 1].
func (p *Perlin) At(point ...float64) float64 {
	dim := len(p.resolution)
	if len(point) != dim {
		panic(fmt.Sprintf("noise point dimension %d, want %d", len(point), dim))
	}

	// Переводим точку из [0, 1) в координаты решетки.
	scaled := make([]float64, dim)
	for i, coord := range point {
		scaled[i] = coord * float64(p.resolution[i])
	}

	// Границы окружающего гиперкуба по каждой оси.
	lo := make([]int, dim)
	for i, coord := range scaled {
		lo[i] = int(coord - 0.000001)
	}

	// Скалярное произведение каждого градиента на вектор от его узла к
	// точке - "влияние" этого градиента. Узлы перебираются так, что
	// последняя ось меняется быстрее всех.
	corners := 1 << dim
	dots := make([]float64, 0, corners)
	vertex := make([]int, dim)
	for mask := 0; mask < corners; mask++ {
		for i := 0; i < dim; i++ {
			vertex[i] = lo[i]
			if mask&(1<<(dim-1-i)) != 0 {
				vertex[i]++
			}
		}
		grad := p.gradients[packVertex(vertex)]
		var dot float64
		for i := 0; i < dim; i++ {
			dot += grad[i] * (scaled[i] - float64(vertex[i]))
		}
		dots = append(dots, dot)
	}

	// Сворачиваем произведения парами: соседние элементы отличаются
	// только по последней оси, интерполяция убирает ее; затем
	// предпоследнюю, и так далее, пока не останется одно значение.
	for axis := dim - 1; axis >= 0; axis-- {
		s := smoothstep(scaled[axis] - float64(lo[axis]))
		next := make([]float64, 0, len(dots)/2)
		for i := 0; i < len(dots); i += 2 {
			next = append(next, lerp(s, dots[i], dots[i+1]))
		}
		dots = next
	}

	n := dots[0]*p.scale + 0.5

	// У сырого шума сильное тяготение к центру диапазона из-за
	// центральной предельной теоремы: верхняя и нижняя осьмушки почти
	// не встречаются. smoothstep как раз растягивает значения к краям.
	return smoothstep(clamp01(n))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Discrete - шум для дискретной сетки; удобен, если вы пишете, ну,
// скажем, рогалик. Каждая точка сетки считается центром клетки,
// то есть к координате добавляется 0.5.
type Discrete struct {
	dims    []int
	octaves []*Perlin
	norm    float64
}

// NewDiscrete создает генератор для сетки заданных размеров. octaves
// накладывает указанное число удвоений разрешения с половинным весом
// каждое; резкость растет, диапазон нормализуется обратно к [0, 1].
func NewDiscrete(rng *rand.Rand, dims []int, resolution, octaves int) *Discrete {
	if octaves < 1 {
		panic(fmt.Sprintf("need at least one octave, got %d", octaves))
	}

	d := &Discrete{
		dims: append([]int(nil), dims...),
		// 1 октава: [0, 1]; 2 октавы: [0, 3/2]; 3: [0, 7/4]...
		norm: 2 - math.Pow(2, float64(1-octaves)),
	}
	for o := 0; o < octaves; o++ {
		res := make([]int, len(dims))
		for i := range res {
			res[i] = resolution << o
		}
		d.octaves = append(d.octaves, NewPerlin(rng, res...))
	}
	return d
}

// At возвращает значение шума для клетки сетки; координаты лежат
// в [0, dims[i]). Результат - в [0, 1].
func (d *Discrete) At(coords ...int) float64 {
	if len(coords) != len(d.dims) {
		panic(fmt.Sprintf("noise point dimension %d, want %d", len(coords), len(d.dims)))
	}

	point := make([]float64, len(coords))
	for i, c := range coords {
		point[i] = (float64(c) + 0.5) / float64(d.dims[i])
	}

	var n float64
	for o, p := range d.octaves {
		n += p.At(point...) / float64(int(1)<<o)
	}
	return n / d.norm
}
