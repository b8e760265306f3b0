package gearscore

import (
	"math"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

// TotalScore sums the per-item scores of a loadout. A partial loadout has each
// missing slot filled with the average of the equipped ones.
func TotalScore(items []domain.EquipItem, base BaseScoreTable) int {
	sum := 0
	for _, item := range items {
		sum += ScoreOf(item, base)
	}
	return compensate(sum, len(items))
}

func compensate(sum, count int) int {
	missing := domain.FullLoadoutSize - count
	if missing > 0 && count > 0 {
		sum += int(math.Floor(float64(sum) / float64(count) * float64(missing)))
	}
	return sum
}
