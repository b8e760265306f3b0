package gearscore

import (
	"math"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

// ScoreOf computes the gear score of one equipped item.
// The result is deterministic and never negative; unknown slot types score 0.
func ScoreOf(item domain.EquipItem, base BaseScoreTable) int {
	var score int
	switch item.SlotType {
	case domain.SlotSeal:
		score = sealScore(item)
	case domain.SlotArk:
		score = arkScore(item)
	case domain.SlotEarring:
		score = earringScore(item)
	case domain.SlotBelt, domain.SlotShoulder:
		score = beltScore(item, base)
	case domain.SlotWeapon, domain.SlotArmor, domain.SlotAccessory:
		score = equipmentScore(item)
	default:
		return 0
	}
	return max(score, 0)
}

func sealScore(item domain.EquipItem) int {
	reinforcePart := sealReinforceShare * float64(sealReinforceUnit*item.ReinforceCount)
	basePart := sealBaseShare * float64(sealGradeUnit*item.Grade+item.UseLevel)
	return int(math.Round(sealScale * (reinforcePart + basePart)))
}

func arkScore(item domain.EquipItem) int {
	v := arkBase + arkPerLevel*float64(item.ArkLevel)
	if item.HasArkOption1 {
		v += arkOptionBonus
	}
	if item.HasArkOption2 {
		v += arkOptionBonus
	}
	if item.IsQuestArk {
		v *= arkQuestPenalty
	}
	return int(math.Round(v))
}

func earringScore(item domain.EquipItem) int {
	return item.UseLevel + floorDiv(item.StatSum, earringStatDivisor) + item.Grade*earringPerGrade
}

func beltScore(item domain.EquipItem, base BaseScoreTable) int {
	b := float64(base.Lookup(item.UseLevel))
	v := int(math.Floor(b*beltFixedShare + b*beltCompletionShare*item.OptionCompletion))
	if item.HighOption {
		v += beltHighOptionBonus
	}
	return v
}

// equipmentScore handles weapons, armor and accessories. Grades below the top
// grade use a linear formula; the top grade is anchored to the item level.
func equipmentScore(item domain.EquipItem) int {
	isAccessory := item.SlotType == domain.SlotAccessory
	topGrade := item.Grade >= domain.TopGrade
	level := item.UseLevel

	avgLevel := averageLevel(item)

	addAcc := 0.0
	if isAccessory {
		addAcc = accessoryBonus(item)
	}

	setOption := 1.0
	if !(topGrade && level >= topGradePenaltyFreeLevel) && !isAccessory {
		randomPenalty := completionPenalty * (1 - item.RandomOptionCompletion)
		enchantPenalty := completionPenalty * (1 - item.EnchantCompletion)
		setOption = 1 - randomPenalty - enchantPenalty
	}

	setAdvantage := setAdvantageReduced
	if topGrade && level >= topGradeFullSetLevel {
		setAdvantage = 1.0
	}

	transcend := float64(item.TranscendCount)
	if topGrade && level >= topGradePenaltyFreeLevel {
		transcend = maxEffectiveTranscend
	}

	reinforce := float64(item.ReinforceCount)
	var ret float64
	if !topGrade {
		ret = 0.5*(lowGradeTranscendFactor*transcend+lowGradeReinforceFactor*reinforce) +
			0.5*(lowGradePerGrade*float64(item.Grade)+lowGradePerLevel*avgLevel)
	} else {
		var diff float64
		if level >= topGradeFullSetLevel {
			diff = float64(level - topGradeAnchorLevel)
		} else {
			diff = avgLevel - topGradeAnchorLevel
		}
		diff = math.Max(0, diff)
		ret = transcend*topGradeTranscendFactor + reinforce*topGradeReinforceFactor + diff*topGradePerLevel + topGradeAnchorLevel
		if level > 0 {
			ret *= math.Min(1, avgLevel/float64(level))
		}
	}

	return int(math.Round(ret*setOption*setAdvantage + addAcc + float64(item.GemPoints)))
}

// averageLevel blends use level with identification level; accessories use their use level
func averageLevel(item domain.EquipItem) float64 {
	if item.SlotType == domain.SlotAccessory {
		return float64(item.UseLevel)
	}
	use := float64(item.UseLevel)
	ident := float64(item.IdentificationLevel + item.UseLevel + item.RandomIdentBonus)
	return math.Floor(use*avgLevelUseShare + ident*avgLevelIdentFactor*avgLevelIdentShare + 0.5)
}

func accessoryBonus(item domain.EquipItem) float64 {
	if item.Grade < domain.TopGrade {
		return accessoryLowBonus
	}
	if item.UseLevel < topGradePenaltyFreeLevel {
		return accessoryTopBonus
	}
	perLevel := accessoryPerLevelLow
	if item.UseLevel > accessoryTierSwitchLevel {
		perLevel = accessoryPerLevelHigh
	}
	return float64(accessoryTopBonus + max(0, (item.UseLevel-topGradePenaltyFreeLevel)*perLevel))
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}
