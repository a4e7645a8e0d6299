package world

import (
	"math/rand"

	"github.com/eevee/flax/internal/gamemap"
	"github.com/eevee/flax/internal/geometry"
	"github.com/eevee/flax/pkg/fractor"
)

// DefaultPlan - этажи по умолчанию: лес наверху, под ним подземелье,
// в самом низу развалины.
func DefaultPlan() []Floor {
	return []Floor{
		{Name: "forest", Build: buildForest},
		{Name: "dungeon", Build: buildDungeon},
		{Name: "ruins", Build: buildRuins},
	}
}

func buildForest(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
	return fractor.GenerateMap(fractor.NewPerlinFractor(rng, size), up, down)
}

func buildDungeon(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
	f := fractor.NewBinaryPartitionFractor(rng, size, geometry.Size{Width: 5, Height: 5})
	return fractor.GenerateMap(f, up, down)
}

func buildRuins(rng *rand.Rand, size geometry.Size, up, down string) *gamemap.Map {
	return fractor.GenerateMap(fractor.NewRuinFractor(rng, size), up, down)
}
