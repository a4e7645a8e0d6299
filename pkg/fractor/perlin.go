package fractor

import (
	"math/rand"
	"sort"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/noise"
)

// PerlinFractor рисует лес. Шум читается примерно как обратная
// "исхоженность": по низким значениям ходят часто (стриженая трава),
// высокие не трогают (деревья). Все локальные минимумы шума соединяются
// тропинками.
type PerlinFractor struct {
	base
}

func NewPerlinFractor(rng *rand.Rand, size geometry.Size) *PerlinFractor {
	return &PerlinFractor{base: newBase(rng, size)}
}

func (f *PerlinFractor) Generate() {
	field := noise.NewDiscrete(
		f.rng,
		[]int{f.region.Width(), f.region.Height()},
		6, 1)

	noiseAt := make(map[geometry.Point]float64, f.region.Area())
	for _, p := range f.region.IterPoints() {
		noiseAt[p] = field.At(p.X-f.region.Left(), p.Y-f.region.Top())
	}

	for _, p := range f.region.IterPoints() {
		n := noiseAt[p]
		var arch *entity.Type
		switch {
		case n < 0.3:
			arch = entity.CutGrass
		case n < 0.6:
			arch = entity.Grass
		default:
			arch = entity.Tree
		}
		f.canvas.SetArchitecture(p, arch)
	}

	minima := localMinima(f.region, noiseAt)
	for p := range minima {
		f.canvas.SetArchitecture(p, entity.Dirt)
	}

	for p := range floodConnect(f.region, noiseAt, minima) {
		f.canvas.SetArchitecture(p, entity.Dirt)
	}
}

// localMinima собирает клетки не выше любого соседа в границах: каждая
// проходимая область гарантированно соединена с каким-то минимумом.
// Граница дополнительно сравнивается только вдоль границы: отсутствующие
// соседи считаются максимально высокими.
func localMinima(region geometry.Rectangle, noiseAt map[geometry.Point]float64) map[geometry.Point]struct{} {
	minima := make(map[geometry.Point]struct{})

	at := func(p geometry.Point) float64 {
		if n, ok := noiseAt[p]; ok {
			return n
		}
		return 1
	}

	for p, n := range noiseAt {
		isMin := true
		for _, npt := range p.Neighbors() {
			if other, ok := noiseAt[npt]; ok && other < n {
				isMin = false
				break
			}
		}
		if isMin {
			minima[p] = struct{}{}
		}
	}

	for _, x := range region.RangeWidth() {
		for _, y := range []int{region.Top(), region.Bottom()} {
			p := geometry.Point{X: x, Y: y}
			n := noiseAt[p]
			if n < at(p.Shift(-1, 0)) && n < at(p.Shift(1, 0)) {
				minima[p] = struct{}{}
			}
		}
	}
	for _, y := range region.RangeHeight() {
		for _, x := range []int{region.Left(), region.Right()} {
			p := geometry.Point{X: x, Y: y}
			n := noiseAt[p]
			if n < at(p.Shift(0, -1)) && n < at(p.Shift(0, 1)) {
				minima[p] = struct{}{}
			}
		}
	}

	return minima
}

// floodConnect соединяет минимумы тропинками затоплением леса:
//   - каждый минимум - отдельная лужа;
//   - вода прибывает: клетки затапливаются в порядке возрастания шума,
//     каждая примыкает к луже самого низкого затопленного соседа и
//     запоминает, кто ее затопил;
//   - клетка, коснувшаяся двух и более луж, сливает их в одну; сама
//     клетка и цепочки затопления до исходных минимумов становятся
//     тропой.
//
// Когда остается одна лужа, все минимумы соединены по самому низкому
// маршруту.
func floodConnect(region geometry.Rectangle, noiseAt map[geometry.Point]float64, minima map[geometry.Point]struct{}) map[geometry.Point]struct{} {
	flooded := make(map[geometry.Point]int)
	puddleMap := make(map[int]int)
	pathFromPuddle := make(map[geometry.Point]map[int]geometry.Point)
	paths := make(map[geometry.Point]struct{})

	// Нумеруем минимумы в построчном порядке: поведение не должно
	// зависеть от порядка обхода хеш-таблицы.
	starts := sortedPoints(minima)
	for puddle, p := range starts {
		flooded[p] = puddle
		puddleMap[puddle] = puddle
	}

	var floodOrder []geometry.Point
	for _, p := range region.IterPoints() {
		if _, ok := flooded[p]; !ok {
			floodOrder = append(floodOrder, p)
		}
	}
	sort.SliceStable(floodOrder, func(i, j int) bool {
		return noiseAt[floodOrder[i]] < noiseAt[floodOrder[j]]
	})

	for _, p := range floodOrder {
		// Затопленные соседи, сгруппированные по каноничной луже.
		adjacent := make(map[int][]geometry.Point)
		for _, npt := range p.Neighbors() {
			if puddle, ok := flooded[npt]; ok {
				canonical := puddleMap[puddle]
				adjacent[canonical] = append(adjacent[canonical], npt)
			}
		}
		// Любая клетка либо минимум, либо примыкает к клетке ниже
		// себя - по самому определению минимума.
		if len(adjacent) == 0 {
			panic("flooding reached a tile with no flooded neighbor")
		}

		// Запоминаем, как попасть из каждой лужи сюда; храним только
		// самого низкого соседа.
		entry := make(map[int]geometry.Point, len(adjacent))
		for puddle, pts := range adjacent {
			lowest := pts[0]
			for _, cand := range pts[1:] {
				if noiseAt[cand] < noiseAt[lowest] {
					lowest = cand
				}
			}
			entry[puddle] = lowest
		}
		pathFromPuddle[p] = entry

		thisPuddle := minKey(adjacent)
		flooded[p] = thisPuddle

		if len(adjacent) < 2 {
			continue
		}

		// Слияние: тропа от стартовых точек обеих луж досюда.
		paths[p] = struct{}{}
		for _, puddle := range sortedKeys(adjacent) {
			pathPoint := p
			for {
				paths[pathPoint] = struct{}{}

				next, ok := lowestEntry(pathFromPuddle[pathPoint], puddleMap, puddle, noiseAt)
				if !ok {
					break
				}
				pathPoint = next
			}
		}

		// Перевешиваем на новую лужу всю карту соответствий: на старую
		// могла ссылаться третья лужа.
		for from, to := range puddleMap {
			if _, ok := adjacent[from]; ok {
				puddleMap[from] = thisPuddle
				continue
			}
			if _, ok := adjacent[to]; ok {
				puddleMap[from] = thisPuddle
			}
		}

		if countDistinct(puddleMap) == 1 {
			break
		}
	}

	return paths
}

// lowestEntry выбирает самый низкий вход, принадлежащий данной луже.
func lowestEntry(entries map[int]geometry.Point, puddleMap map[int]int, puddle int, noiseAt map[geometry.Point]float64) (geometry.Point, bool) {
	var best geometry.Point
	found := false
	for _, candPuddle := range sortedKeys2(entries) {
		candPoint := entries[candPuddle]
		if puddleMap[candPuddle] != puddle {
			continue
		}
		if !found || noiseAt[candPoint] < noiseAt[best] {
			best = candPoint
			found = true
		}
	}
	return best, found
}

func sortedPoints(set map[geometry.Point]struct{}) []geometry.Point {
	points := make([]geometry.Point, 0, len(set))
	for p := range set {
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

func minKey(m map[int][]geometry.Point) int {
	min, first := 0, true
	for k := range m {
		if first || k < min {
			min, first = k, false
		}
	}
	return min
}

func sortedKeys(m map[int][]geometry.Point) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedKeys2(m map[int]geometry.Point) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func countDistinct(m map[int]int) int {
	seen := make(map[int]struct{}, len(m))
	for _, v := range m {
		seen[v] = struct{}{}
	}
	return len(seen)
}
