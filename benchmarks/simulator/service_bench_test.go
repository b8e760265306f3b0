package simulator_bench

import (
	"context"
	"testing"
	"time"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/catalog"
	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/gearscore"
	"github.com/21in7/tos-fronet-sub000/internal/reinforce"
	"github.com/21in7/tos-fronet-sub000/internal/session"
)

// --- Stubs (Zero-overhead collaborators for benchmarking) ---

type StubBus struct{}

func (StubBus) Publish(ctx context.Context, evt event.Event) error { return nil }
func (StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func loadCatalog(b *testing.B) *catalog.Catalog {
	b.Helper()
	cat, err := catalog.NewLoader().Load("../../configs/catalog.json")
	if err != nil {
		b.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

// --- Benchmarks ---

func BenchmarkService_Roll(b *testing.B) {
	cat := loadCatalog(b)
	svc := affix.NewService(cat, session.NewStore(16, time.Hour), StubBus{}, 1000)
	ctx := context.Background()
	seed := uint64(42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Roll(ctx, 3, affix.RollOptions{Count: 10, Seed: &seed}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_RollWithSession(b *testing.B) {
	cat := loadCatalog(b)
	svc := affix.NewService(cat, session.NewStore(16, time.Hour), StubBus{}, 1000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Roll(ctx, 1, affix.RollOptions{Count: 1, SessionID: "bench"}); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkService_Preview(b *testing.B) {
	cat := loadCatalog(b)
	svc := affix.NewService(cat, session.NewStore(16, time.Hour), StubBus{}, 1000)
	ctx := context.Background()
	q := affix.PreviewQuery{ExhibitionID: 3, Groups: []string{"attack_percent", "max_hp", "critical_rate"}, OptionID: 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Preview(ctx, q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_GearScoreTotal(b *testing.B) {
	cat := loadCatalog(b)
	svc := gearscore.NewService(cat, StubBus{})
	ctx := context.Background()

	items := make([]domain.EquipItem, 0, domain.FullLoadoutSize)
	for _, slot := range domain.AllSlotTypes {
		items = append(items, domain.EquipItem{SlotType: slot, UseLevel: 480, Grade: 5, ReinforceCount: 11, StatSum: 500, ArkLevel: 5})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Total(ctx, items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_MonteCarlo(b *testing.B) {
	cat := loadCatalog(b)
	svc := reinforce.NewService(cat, StubBus{}, reinforce.Config{Workers: 4, MaxTrials: 100000})
	ctx := context.Background()
	seed := uint64(7)
	req := reinforce.SimulateRequest{EquipmentLevel: 460, TargetLevel: 15, Trials: 1000, Seed: &seed}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Simulate(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
