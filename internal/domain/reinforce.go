package domain

// ReinforceLevelEntry is one static row of a reinforcement table.
// BaseSuccessRate is expressed in parts per ProbabilityScale.
type ReinforceLevelEntry struct {
	Step            int `json:"step" yaml:"step"`
	BaseSuccessRate int `json:"base_success_rate" yaml:"base_success_rate"`
	AttackBonus     int `json:"attack_bonus" yaml:"attack_bonus"`
	DefenseBonus    int `json:"defense_bonus" yaml:"defense_bonus"`
}

// ReinforceTable holds the per-step entries for one equipment level
type ReinforceTable struct {
	EquipmentLevel int                   `json:"equipment_level" yaml:"equipment_level"`
	Entries        []ReinforceLevelEntry `json:"entries" yaml:"entries"`
}

// Entry returns the entry used to reinforce an item from level to level+1.
// Entries are ordered by Step starting at 1, so Entries[level].Step == level+1.
func (t ReinforceTable) Entry(level int) (ReinforceLevelEntry, bool) {
	if level < 0 || level >= len(t.Entries) {
		return ReinforceLevelEntry{}, false
	}
	return t.Entries[level], true
}

// MaxLevel is the highest reachable reinforcement level
func (t ReinforceTable) MaxLevel() int {
	return len(t.Entries)
}

// BoostCounts is the number of support items applied to one reinforcement attempt
type BoostCounts struct {
	Normal  int `json:"normal"`
	Premium int `json:"premium"`
}
