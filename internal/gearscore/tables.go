package gearscore

import "github.com/21in7/tos-fronet-sub000/internal/domain"

// BaseScoreTable maps an item level to the base score used by belts and shoulders
type BaseScoreTable map[int]int

// Lookup returns the base score for level, DefaultBeltBaseScore when the level is unlisted
func (t BaseScoreTable) Lookup(level int) int {
	if v, ok := t[level]; ok {
		return v
	}
	return domain.DefaultBeltBaseScore
}

// DefaultBaseScores is used when the catalog does not provide a belt/shoulder table
var DefaultBaseScores = BaseScoreTable{
	380: 520,
	400: 560,
	430: 620,
	440: 640,
	460: 700,
	470: 725,
	480: 750,
	490: 780,
	500: 800,
	520: 850,
}
