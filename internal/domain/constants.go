package domain

// Probability scale: rates are stored in parts per ProbabilityScale (100000 = 100%)
const (
	ProbabilityScale = 100000
	MaxFailBonus     = 70000
)

// Reinforcement support item caps
const (
	MaxNormalBoosts  = 3
	MaxPremiumBoosts = 2
)

// Gear score constants
const (
	FullLoadoutSize      = 14
	TopGrade             = 6
	DefaultBeltBaseScore = 700
)

// Option grade bounds
const (
	MinOptionGrade = 1
	MaxOptionGrade = 3
)
