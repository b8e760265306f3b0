package gearscore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

func TestScoreOf_Seal(t *testing.T) {
	item := domain.EquipItem{SlotType: domain.SlotSeal, Grade: 4, ReinforceCount: 10, UseLevel: 1}

	// round(0.26 * (0.7*1000 + 0.3*(4400+1))) = round(525.278)
	assert.Equal(t, 525, ScoreOf(item, DefaultBaseScores))
}

func TestScoreOf_Ark(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.EquipItem
		expected int
	}{
		{
			name:     "one option",
			item:     domain.EquipItem{SlotType: domain.SlotArk, ArkLevel: 10, HasArkOption1: true},
			expected: 752,
		},
		{
			name:     "both options",
			item:     domain.EquipItem{SlotType: domain.SlotArk, ArkLevel: 10, HasArkOption1: true, HasArkOption2: true},
			expected: 1002,
		},
		{
			name:     "quest ark is reduced",
			item:     domain.EquipItem{SlotType: domain.SlotArk, ArkLevel: 10, HasArkOption1: true, IsQuestArk: true},
			expected: 714,
		},
		{
			name:     "level zero without options",
			item:     domain.EquipItem{SlotType: domain.SlotArk},
			expected: 251,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreOf(tt.item, DefaultBaseScores))
		})
	}
}

func TestScoreOf_Earring(t *testing.T) {
	item := domain.EquipItem{SlotType: domain.SlotEarring, UseLevel: 460, StatSum: 419, Grade: 4}

	// 460 + floor(419/20) + 4*15
	assert.Equal(t, 540, ScoreOf(item, DefaultBaseScores))
}

func TestScoreOf_BeltAndShoulder(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.EquipItem
		expected int
	}{
		{
			name:     "listed level with high option",
			item:     domain.EquipItem{SlotType: domain.SlotBelt, UseLevel: 480, OptionCompletion: 0.5, HighOption: true},
			expected: 812,
		},
		{
			name:     "unlisted level uses default base",
			item:     domain.EquipItem{SlotType: domain.SlotShoulder, UseLevel: 455, OptionCompletion: 1},
			expected: 700,
		},
		{
			name:     "zero completion",
			item:     domain.EquipItem{SlotType: domain.SlotShoulder, UseLevel: 500},
			expected: 720,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreOf(tt.item, DefaultBaseScores))
		})
	}
}

func TestScoreOf_BeltCustomTable(t *testing.T) {
	table := BaseScoreTable{400: 1000}
	item := domain.EquipItem{SlotType: domain.SlotBelt, UseLevel: 400, OptionCompletion: 1}

	assert.Equal(t, 1000, ScoreOf(item, table))
}

func TestScoreOf_Equipment(t *testing.T) {
	tests := []struct {
		name     string
		item     domain.EquipItem
		expected int
	}{
		{
			name: "low grade weapon full completion",
			item: domain.EquipItem{
				SlotType: domain.SlotWeapon, Grade: 5, UseLevel: 440, IdentificationLevel: 440,
				ReinforceCount: 10, TranscendCount: 5, RandomOptionCompletion: 1, EnchantCompletion: 1,
			},
			expected: 364,
		},
		{
			name: "low grade weapon half completion",
			item: domain.EquipItem{
				SlotType: domain.SlotWeapon, Grade: 5, UseLevel: 440, IdentificationLevel: 440,
				ReinforceCount: 10, TranscendCount: 5, RandomOptionCompletion: 0.5, EnchantCompletion: 0.5,
			},
			expected: 346,
		},
		{
			name: "top grade armor at full set level",
			item: domain.EquipItem{
				SlotType: domain.SlotArmor, Grade: 6, UseLevel: 480, IdentificationLevel: 480,
				ReinforceCount: 20, TranscendCount: 3, GemPoints: 50,
			},
			expected: 1125,
		},
		{
			name: "top grade weapon at penalty free level",
			item: domain.EquipItem{
				SlotType: domain.SlotWeapon, Grade: 6, UseLevel: 470, IdentificationLevel: 470,
				ReinforceCount: 10,
			},
			expected: 518,
		},
		{
			name:     "top grade accessory above tier switch",
			item:     domain.EquipItem{SlotType: domain.SlotAccessory, Grade: 6, UseLevel: 500},
			expected: 1930,
		},
		{
			name:     "top grade accessory at tier switch",
			item:     domain.EquipItem{SlotType: domain.SlotAccessory, Grade: 6, UseLevel: 490},
			expected: 1590,
		},
		{
			name:     "top grade accessory below penalty free level",
			item:     domain.EquipItem{SlotType: domain.SlotAccessory, Grade: 6, UseLevel: 460, TranscendCount: 4},
			expected: 525,
		},
		{
			name: "low grade accessory ignores completion",
			item: domain.EquipItem{
				SlotType: domain.SlotAccessory, Grade: 5, UseLevel: 450, TranscendCount: 2, ReinforceCount: 5,
				RandomOptionCompletion: 0, EnchantCompletion: 0,
			},
			expected: 444,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreOf(tt.item, DefaultBaseScores))
		})
	}
}

// TestScoreOf_TopGradeBoundary checks that grade 6 at level 470 forces transcend
// to 10 and drops the completion penalties
func TestScoreOf_TopGradeBoundary(t *testing.T) {
	base := domain.EquipItem{
		SlotType: domain.SlotWeapon, Grade: 6, UseLevel: 470, IdentificationLevel: 470,
		ReinforceCount: 15, RandomOptionCompletion: 1, EnchantCompletion: 1,
	}
	want := ScoreOf(base, DefaultBaseScores)

	for transcend := 0; transcend <= 10; transcend++ {
		for _, completion := range []float64{0, 0.3, 1} {
			item := base
			item.TranscendCount = transcend
			item.RandomOptionCompletion = completion
			item.EnchantCompletion = completion
			assert.Equal(t, want, ScoreOf(item, DefaultBaseScores), "transcend=%d completion=%v", transcend, completion)
		}
	}
}

func TestScoreOf_BelowBoundaryUsesTranscend(t *testing.T) {
	item := domain.EquipItem{SlotType: domain.SlotWeapon, Grade: 6, UseLevel: 460, IdentificationLevel: 460}
	low := ScoreOf(item, DefaultBaseScores)

	item.TranscendCount = 10
	high := ScoreOf(item, DefaultBaseScores)

	assert.Greater(t, high, low)
}

func TestScoreOf_Deterministic(t *testing.T) {
	item := domain.EquipItem{
		SlotType: domain.SlotArmor, Grade: 5, UseLevel: 430, IdentificationLevel: 440, RandomIdentBonus: 10,
		ReinforceCount: 8, TranscendCount: 4, RandomOptionCompletion: 0.7, EnchantCompletion: 0.2, GemPoints: 33,
	}

	first := ScoreOf(item, DefaultBaseScores)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ScoreOf(item, DefaultBaseScores))
	}
}

func TestScoreOf_NeverNegative(t *testing.T) {
	item := domain.EquipItem{SlotType: domain.SlotEarring, UseLevel: -500}
	assert.Equal(t, 0, ScoreOf(item, DefaultBaseScores))
}

func TestScoreOf_UnknownSlot(t *testing.T) {
	item := domain.EquipItem{SlotType: domain.SlotType("cape"), Grade: 6, UseLevel: 500}
	assert.Equal(t, 0, ScoreOf(item, DefaultBaseScores))
}

func TestAverageLevel(t *testing.T) {
	tests := []struct {
		name string
		item domain.EquipItem
		want float64
	}{
		{"accessory uses use level", domain.EquipItem{SlotType: domain.SlotAccessory, UseLevel: 460, IdentificationLevel: 100}, 460},
		// floor(460*0.5 + 560*0.33334*0.5 + 0.5)
		{"armor blends identification", domain.EquipItem{SlotType: domain.SlotArmor, UseLevel: 460, IdentificationLevel: 100}, 323},
		// floor(480*0.5 + 1000*0.33334*0.5 + 0.5)
		{"random ident bonus counts", domain.EquipItem{SlotType: domain.SlotWeapon, UseLevel: 480, IdentificationLevel: 500, RandomIdentBonus: 20}, 407},
		{"zero levels", domain.EquipItem{SlotType: domain.SlotArmor}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, averageLevel(tt.item))
		})
	}
}
