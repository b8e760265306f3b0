package affix

import (
	"fmt"
	"math"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// These previews are display estimates and never feed the roll itself.
// An empty pool (total weight 0) gives 0 everywhere.

// groupWeights sums option weights per description key
func groupWeights(pool []domain.Option) (map[string]float64, float64) {
	weights := make(map[string]float64)
	total := 0.0
	for _, opt := range pool {
		weights[opt.DescriptionKey] += opt.Weight
		total += opt.Weight
	}
	return weights, total
}

func uniqueGroups(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// ProbabilityAnyGroup estimates the chance that at least one of the target groups
// appears in a roll of pickCount options: 1 - ((T - Wsel) / T)^pickCount.
func ProbabilityAnyGroup(pool []domain.Option, groups []string, pickCount int) float64 {
	weights, total := groupWeights(pool)
	if total <= 0 || pickCount <= 0 {
		return 0
	}

	selected := 0.0
	for _, g := range uniqueGroups(groups) {
		selected += weights[g]
	}

	p := 1 - math.Pow((total-selected)/total, float64(pickCount))
	return utils.ClampFloat(p, 0, 1)
}

// ProbabilityAllGroups estimates the chance that all 2 or 3 target groups appear
// together: C(n,k) * Πp_i * (1 - Σp_i)^(n-k).
//
// This is a multinomial approximation that treats slots as independent draws with
// replacement; it is not exact for pools that are small relative to pickCount.
// Fewer slots than targets gives 0.
func ProbabilityAllGroups(pool []domain.Option, groups []string, pickCount int) (float64, error) {
	targets := uniqueGroups(groups)
	k := len(targets)
	if k < MinAllGroupsTargets || k > MaxAllGroupsTargets {
		return 0, fmt.Errorf("%w: all-groups preview needs %d to %d distinct groups, got %d",
			domain.ErrInvalidInput, MinAllGroupsTargets, MaxAllGroupsTargets, k)
	}

	weights, total := groupWeights(pool)
	if total <= 0 || pickCount < k {
		return 0, nil
	}

	product, sum := 1.0, 0.0
	for _, g := range targets {
		p := weights[g] / total
		product *= p
		sum += p
	}

	rest := math.Max(0, 1-sum)
	p := utils.Binomial(pickCount, k) * product * math.Pow(rest, float64(pickCount-k))
	return utils.ClampFloat(p, 0, 1), nil
}

// ProbabilityMaxValue estimates the chance that the option's group rolls the top
// value of its highest-grade variant:
// pickCount * P(group) * P(variant | group) * P(max | range).
//
// For integer ranges P(max | range) is 1/(max-min+1). For continuous ranges it is
// the rough heuristic 1/(max-min), with a degenerate range counting as certain.
func ProbabilityMaxValue(pool []domain.Option, optionID int, pickCount int) (float64, error) {
	weights, total := groupWeights(pool)
	if total <= 0 {
		return 0, nil
	}

	var target *domain.Option
	for i := range pool {
		if pool[i].ID == optionID {
			target = &pool[i]
			break
		}
	}
	if target == nil {
		return 0, fmt.Errorf("%w: option %d is not in the pool", domain.ErrOptionNotFound, optionID)
	}

	if pickCount <= 0 {
		return 0, nil
	}

	groupWeight := weights[target.DescriptionKey]
	variant := highestGradeVariant(pool, target.DescriptionKey)

	pGroup := groupWeight / total
	pVariant := variant.Weight / groupWeight
	pMax := maxValueChance(variant)

	p := float64(pickCount) * pGroup * pVariant * pMax
	return utils.ClampFloat(p, 0, 1), nil
}

// highestGradeVariant returns the highest-grade option of a group, first in pool order on ties
func highestGradeVariant(pool []domain.Option, group string) domain.Option {
	var best domain.Option
	found := false
	for _, opt := range pool {
		if opt.DescriptionKey != group {
			continue
		}
		if !found || opt.Grade > best.Grade {
			best = opt
			found = true
		}
	}
	return best
}

func maxValueChance(opt domain.Option) float64 {
	span := opt.MaxValue - opt.MinValue
	if utils.IsWhole(opt.MinValue) && utils.IsWhole(opt.MaxValue) {
		return 1 / (span + 1)
	}
	if span <= 0 {
		return 1
	}
	return 1 / span
}
