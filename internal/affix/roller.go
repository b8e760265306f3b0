package affix

import (
	"math"
	"sort"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// keyedOption pairs a candidate with its A-ES sort key
type keyedOption struct {
	option domain.Option
	key    float64
}

// SelectWeighted draws up to pickCount distinct options from pool, weighted by
// Option.Weight, and rolls a magnitude for each one.
//
// Each candidate gets the key U^(1/w) for a fresh uniform U; the candidates with
// the largest keys win, in descending key order. All key draws happen first in
// pool order, followed by one magnitude draw per selected option in result
// order, so a seeded source reproduces a roll exactly.
//
// An empty pool or a non-positive pickCount yields an empty result. The pool is
// not modified.
func SelectWeighted(pool []domain.Option, pickCount int, rng utils.RandomSource) []domain.RolledOption {
	if len(pool) == 0 || pickCount <= 0 {
		return []domain.RolledOption{}
	}

	keyed := make([]keyedOption, len(pool))
	for i, opt := range pool {
		keyed[i] = keyedOption{option: opt, key: samplingKey(rng.Float64(), opt.Weight)}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key > keyed[j].key
	})

	n := min(pickCount, len(keyed))
	result := make([]domain.RolledOption, n)
	for i := 0; i < n; i++ {
		opt := keyed[i].option
		result[i] = domain.RolledOption{
			Option:    opt,
			Magnitude: RollMagnitude(opt, rng.Float64()),
		}
	}
	return result
}

// samplingKey computes U^(1/w), clamping non-positive draws to MinUniformDraw
func samplingKey(u, weight float64) float64 {
	if u <= 0 {
		u = MinUniformDraw
	}
	return math.Pow(u, 1/weight)
}

// RollMagnitude maps a uniform draw u in [0,1) onto the option's value range.
// Whole-number bounds give an inclusive uniform integer; anything else gives a
// continuous value rounded to two decimals.
func RollMagnitude(opt domain.Option, u float64) float64 {
	lo, hi := opt.MinValue, opt.MaxValue
	if utils.IsWhole(lo) && utils.IsWhole(hi) {
		v := math.Floor(u*(hi-lo+1)) + lo
		return math.Min(v, hi)
	}
	v := utils.RoundTo(u*(hi-lo)+lo, MagnitudeDecimalPlaces)
	return utils.ClampFloat(v, lo, hi)
}
