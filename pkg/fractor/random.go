package fractor

import (
	"math"
	"math/rand"
)

// RandomNormalInt возвращает нормально распределенное целое с данными
// средним и отклонением. Результат никогда не выходит за µ ± 2σ: где-то
// предел ставить надо, а за ним оказывается 4% бросков.
func RandomNormalInt(rng *rand.Rand, mu, sigma float64) int {
	ret := int(rng.NormFloat64()*sigma + mu + 0.5)

	lb := int(math.Ceil(mu - 2*sigma))
	ub := int(math.Floor(mu + 2*sigma))

	if ret < lb {
		return lb
	}
	if ret > ub {
		return ub
	}
	return ret
}

// RandomNormalRange - то же, но с явными границами; значения кучкуются
// вокруг середины отрезка.
func RandomNormalRange(rng *rand.Rand, lb, ub int) int {
	mu := float64(lb+ub) / 2
	sigma := float64(ub-lb) / 4
	ret := int(rng.NormFloat64()*sigma + mu + 0.5)

	if ret < lb {
		return lb
	}
	if ret > ub {
		return ub
	}
	return ret
}
