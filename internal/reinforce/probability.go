package reinforce

import (
	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// EffectiveProbability returns the success chance of one attempt in parts per
// domain.ProbabilityScale:
//
//	basic + failBonus + min(normal,3)*ceil(basic/5) + min(premium,2)*ceil(basic/5)
//
// clamped to [0, ProbabilityScale]. Negative boost counts count as zero.
func EffectiveProbability(entry domain.ReinforceLevelEntry, failBonus, normalBoosts, premiumBoosts int) int {
	basic := entry.BaseSuccessRate
	step := ceilDiv(basic, boostDivisor)

	normal := utils.ClampInt(normalBoosts, 0, domain.MaxNormalBoosts)
	premium := utils.ClampInt(premiumBoosts, 0, domain.MaxPremiumBoosts)

	total := basic + failBonus + normal*step + premium*step
	return utils.ClampInt(total, 0, domain.ProbabilityScale)
}

// NextFailBonus returns the fail bonus carried into the next attempt after a
// failure at attemptProbability, capped at domain.MaxFailBonus
func NextFailBonus(current, attemptProbability int) int {
	next := current + ceilDiv(attemptProbability, failBonusDivisor)
	return utils.ClampInt(next, 0, domain.MaxFailBonus)
}

// ceilDiv rounds a/b up for non-negative a; negative a rounds toward zero
func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// Percent converts a probability in parts per ProbabilityScale to a percentage
func Percent(p int) float64 {
	return utils.RoundTo(float64(p)*100/domain.ProbabilityScale, 3)
}
