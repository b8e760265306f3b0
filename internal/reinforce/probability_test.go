package reinforce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

func entry(rate int) domain.ReinforceLevelEntry {
	return domain.ReinforceLevelEntry{Step: 1, BaseSuccessRate: rate}
}

func TestEffectiveProbability(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		bonus    int
		normal   int
		premium  int
		expected int
	}{
		{"base only", 10000, 0, 0, 0, 10000},
		{"fail bonus adds directly", 10000, 2500, 0, 0, 12500},
		{"three normal boosts", 10000, 0, 3, 0, 16000},
		{"normal boosts are capped at three", 10000, 0, 5, 0, 16000},
		{"two premium boosts", 10000, 0, 0, 2, 14000},
		{"premium boosts are capped at two", 10000, 0, 0, 9, 14000},
		{"negative boosts count as zero", 10000, 0, -2, -1, 10000},
		{"boost step rounds up", 7, 0, 1, 0, 9},
		{"everything combined", 20000, 1000, 1, 1, 29000},
		{"clamped to certainty", 90000, 0, 3, 2, 100000},
		{"fail bonus can reach certainty", 40000, 70000, 0, 0, 100000},
		{"zero base", 0, 0, 3, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveProbability(entry(tt.rate), tt.bonus, tt.normal, tt.premium)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNextFailBonus(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		probability int
		expected    int
	}{
		{"tenth of the attempt", 0, 10000, 1000},
		{"rounds up", 0, 15, 2},
		{"accumulates", 1000, 11000, 2100},
		{"capped", 69500, 10000, 70000},
		{"stays at cap", 70000, 50000, 70000},
		{"zero probability adds nothing", 300, 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextFailBonus(tt.current, tt.probability))
		})
	}
}

// TestBoostStep_IntegerExact guards against float artifacts such as 15*0.2 = 3.0000000000000004
func TestBoostStep_IntegerExact(t *testing.T) {
	for _, rate := range []int{5, 15, 35, 100, 45000} {
		got := EffectiveProbability(entry(rate), 0, 1, 0)
		assert.Equal(t, rate+rate/5, got, "rate=%d", rate)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 100.0, Percent(100000))
	assert.Equal(t, 12.345, Percent(12345))
	assert.Equal(t, 0.0, Percent(0))
}
