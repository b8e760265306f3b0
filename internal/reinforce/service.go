package reinforce

import (
	"context"
	"fmt"
	"time"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// TableProvider looks up reinforcement tables by equipment level
type TableProvider interface {
	ReinforceTable(equipmentLevel int) (domain.ReinforceTable, error)
}

// ProbabilityQuery asks for the chance of reinforcing from Level to Level+1
type ProbabilityQuery struct {
	EquipmentLevel int
	Level          int
	FailBonus      int
	Boosts         domain.BoostCounts
}

// ProbabilityResult is the effective chance of one attempt
type ProbabilityResult struct {
	EquipmentLevel  int     `json:"equipment_level"`
	Level           int     `json:"level"`
	BaseSuccessRate int     `json:"base_success_rate"`
	FailBonus       int     `json:"fail_bonus"`
	Probability     int     `json:"probability"`
	Percent         float64 `json:"percent"`
	FailBonusOnFail int     `json:"fail_bonus_on_fail"`
	AttackBonus     int     `json:"attack_bonus"`
	DefenseBonus    int     `json:"defense_bonus"`
}

// SimulateRequest runs one item (Trials <= 1) or a Monte Carlo batch to TargetLevel
type SimulateRequest struct {
	EquipmentLevel int
	StartLevel     int
	TargetLevel    int
	Boosts         domain.BoostCounts
	Trials         int
	Seed           *uint64
}

// RunSummary is the full history of a single simulated item
type RunSummary struct {
	History []AttemptResult `json:"history"`
	Final   State           `json:"final"`
}

// SimulationReport holds either a single run or a Monte Carlo summary
type SimulationReport struct {
	Mode       string            `json:"mode"`
	Run        *RunSummary       `json:"run,omitempty"`
	MonteCarlo *MonteCarloResult `json:"monte_carlo,omitempty"`
}

// Service defines the reinforcement simulator interface
type Service interface {
	Probability(ctx context.Context, q ProbabilityQuery) (*ProbabilityResult, error)
	Simulate(ctx context.Context, req SimulateRequest) (*SimulationReport, error)
}

// Config bounds simulation cost
type Config struct {
	Workers             int
	MaxTrials           int
	MaxAttemptsPerTrial int
}

type service struct {
	tables   TableProvider
	eventBus event.Bus
	cfg      Config
	now      func() time.Time
}

// NewService creates a new reinforcement service
func NewService(tables TableProvider, eventBus event.Bus, cfg Config) Service {
	return &service{
		tables:   tables,
		eventBus: eventBus,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Probability computes the effective chance of the next attempt
func (s *service) Probability(ctx context.Context, q ProbabilityQuery) (*ProbabilityResult, error) {
	table, err := s.tables.ReinforceTable(q.EquipmentLevel)
	if err != nil {
		return nil, err
	}
	entry, ok := table.Entry(q.Level)
	if !ok {
		return nil, fmt.Errorf("%w: level %d of equipment level %d", domain.ErrMaxReinforce, q.Level, q.EquipmentLevel)
	}
	if q.FailBonus < 0 || q.FailBonus > domain.MaxFailBonus {
		return nil, fmt.Errorf("%w: fail bonus must be between 0 and %d", domain.ErrInvalidInput, domain.MaxFailBonus)
	}

	p := EffectiveProbability(entry, q.FailBonus, q.Boosts.Normal, q.Boosts.Premium)
	return &ProbabilityResult{
		EquipmentLevel:  q.EquipmentLevel,
		Level:           q.Level,
		BaseSuccessRate: entry.BaseSuccessRate,
		FailBonus:       q.FailBonus,
		Probability:     p,
		Percent:         Percent(p),
		FailBonusOnFail: NextFailBonus(q.FailBonus, p),
		AttackBonus:     entry.AttackBonus,
		DefenseBonus:    entry.DefenseBonus,
	}, nil
}

// Simulate runs a single item or a Monte Carlo batch
func (s *service) Simulate(ctx context.Context, req SimulateRequest) (*SimulationReport, error) {
	log := logger.FromContext(ctx)

	table, err := s.tables.ReinforceTable(req.EquipmentLevel)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxTrials > 0 && req.Trials > s.cfg.MaxTrials {
		return nil, fmt.Errorf("%w: at most %d trials per simulation", domain.ErrInvalidInput, s.cfg.MaxTrials)
	}

	if req.Trials <= 1 {
		sim, err := NewSimulation(table, req.StartLevel, utils.SourceFor(req.Seed))
		if err != nil {
			return nil, err
		}
		history, err := sim.RunUntil(req.TargetLevel, req.Boosts, s.cfg.MaxAttemptsPerTrial)
		if err != nil {
			return nil, err
		}
		for _, res := range history {
			s.publish(ctx, event.NewReinforceAttemptedEvent(req.EquipmentLevel, res.FromLevel, res.Probability, res.Success))
		}
		return &SimulationReport{
			Mode: ModeSingle,
			Run:  &RunSummary{History: history, Final: sim.State()},
		}, nil
	}

	seed := randomSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	log.Info(LogMsgSimulationStarted,
		"equipment_level", req.EquipmentLevel,
		"trials", req.Trials,
		"target_level", req.TargetLevel)

	start := s.now()
	result, err := RunMonteCarlo(ctx, MonteCarloParams{
		Table:               table,
		StartLevel:          req.StartLevel,
		TargetLevel:         req.TargetLevel,
		Boosts:              req.Boosts,
		Trials:              req.Trials,
		Seed:                seed,
		Workers:             s.cfg.Workers,
		MaxAttemptsPerTrial: s.cfg.MaxAttemptsPerTrial,
	})
	if err != nil {
		return nil, err
	}
	elapsed := s.now().Sub(start)

	log.Info(LogMsgSimulationCompleted,
		"trials", req.Trials,
		"mean_attempts", result.Attempts.Mean,
		"duration", elapsed)
	s.publish(ctx, event.NewReinforceSimulatedEvent(req.EquipmentLevel, req.TargetLevel, req.Trials, elapsed))

	return &SimulationReport{Mode: ModeMonteCarlo, MonteCarlo: result}, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// randomSeed draws a fresh seed so unseeded batches still report a reproducible seed
func randomSeed() uint64 {
	return uint64(utils.DefaultSource().Float64() * (1 << 53))
}
