package affix

import (
	"testing"

	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

func BenchmarkSelectWeighted(b *testing.B) {
	pool := testPool()
	rng := utils.NewSeededSource(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SelectWeighted(pool, 3, rng)
	}
}

func BenchmarkProbabilityAllGroups(b *testing.B) {
	pool := testPool()
	groups := []string{"str", "crit_rate", "max_hp"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ProbabilityAllGroups(pool, groups, 5)
	}
}
