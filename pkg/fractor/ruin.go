package fractor

import (
	"math/rand"

	"github.com/eevee/flax/internal/entity"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/internal/noise"
)

// RuinFractor рисует одну комнату и обрушивает ее шумом распада: часть
// стен превращается в разрушаемые руины, часть пола - в обломки. Доля
// оставшегося здоровья выводится из значения шума.
type RuinFractor struct {
	base
}

func NewRuinFractor(rng *rand.Rand, size geometry.Size) *RuinFractor {
	return &RuinFractor{base: newBase(rng, size)}
}

func (f *RuinFractor) Generate() {
	f.canvas.Clear(entity.Floor)

	r := newRoom(f, f.region)
	r.drawTo(f.canvas)

	decay := noise.NewDiscrete(
		f.rng,
		[]int{f.region.Width(), f.region.Height()},
		5, 4)

	for _, p := range f.region.IterPoints() {
		n := decay.At(p.X-f.region.Left(), p.Y-f.region.Top())
		switch f.canvas.Architecture(p) {
		case entity.Wall:
			if n < 0.7 {
				f.canvas.SetArchitectureEntity(
					p, entity.Ruin.New(entity.Breakable{Fraction: n / 0.7}))
			}
		case entity.Floor:
			if n < 0.5 {
				f.canvas.SetArchitectureEntity(
					p, entity.Rubble.New(entity.Breakable{Fraction: n / 0.5}))
			}
		}
	}
}
