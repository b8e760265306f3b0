package reinforce

import (
	"fmt"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// AttemptResult describes one reinforcement attempt
type AttemptResult struct {
	FromLevel      int  `json:"from_level"`
	ToLevel        int  `json:"to_level"`
	Probability    int  `json:"probability"`
	Success        bool `json:"success"`
	FailBonusAfter int  `json:"fail_bonus_after"`
}

// State is a point-in-time view of a simulation
type State struct {
	Level     int `json:"level"`
	FailBonus int `json:"fail_bonus"`
	Attempts  int `json:"attempts"`
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// Simulation carries reinforcement state across successive attempts on one item.
// The fail bonus accumulates on failure and resets to zero on success.
// It is not safe for concurrent use.
type Simulation struct {
	table domain.ReinforceTable
	rng   utils.RandomSource
	state State
}

// NewSimulation starts a simulation at startLevel with no fail bonus
func NewSimulation(table domain.ReinforceTable, startLevel int, rng utils.RandomSource) (*Simulation, error) {
	if startLevel < 0 || startLevel > table.MaxLevel() {
		return nil, fmt.Errorf("%w: start level %d outside 0..%d", domain.ErrInvalidInput, startLevel, table.MaxLevel())
	}
	if rng == nil {
		rng = utils.DefaultSource()
	}
	return &Simulation{
		table: table,
		rng:   rng,
		state: State{Level: startLevel},
	}, nil
}

// State returns the current state
func (s *Simulation) State() State {
	return s.state
}

// Probability returns the success chance of the next attempt
func (s *Simulation) Probability(boosts domain.BoostCounts) (int, error) {
	entry, ok := s.table.Entry(s.state.Level)
	if !ok {
		return 0, fmt.Errorf("%w: level %d", domain.ErrMaxReinforce, s.state.Level)
	}
	return EffectiveProbability(entry, s.state.FailBonus, boosts.Normal, boosts.Premium), nil
}

// Attempt performs one reinforcement attempt using the simulation's random source
func (s *Simulation) Attempt(boosts domain.BoostCounts) (AttemptResult, error) {
	p, err := s.Probability(boosts)
	if err != nil {
		return AttemptResult{}, err
	}
	roll := int(s.rng.Float64() * domain.ProbabilityScale)
	return s.resolve(p, roll), nil
}

// AttemptWithRoll performs one attempt against a fixed roll in [0, ProbabilityScale).
// The attempt succeeds when roll < probability.
func (s *Simulation) AttemptWithRoll(boosts domain.BoostCounts, roll int) (AttemptResult, error) {
	p, err := s.Probability(boosts)
	if err != nil {
		return AttemptResult{}, err
	}
	return s.resolve(p, roll), nil
}

func (s *Simulation) resolve(p, roll int) AttemptResult {
	from := s.state.Level
	s.state.Attempts++

	success := roll < p
	if success {
		s.state.Level++
		s.state.Successes++
		s.state.FailBonus = 0
	} else {
		s.state.Failures++
		s.state.FailBonus = NextFailBonus(s.state.FailBonus, p)
	}

	return AttemptResult{
		FromLevel:      from,
		ToLevel:        s.state.Level,
		Probability:    p,
		Success:        success,
		FailBonusAfter: s.state.FailBonus,
	}
}

// RunUntil attempts until the item reaches target, returning every attempt made.
// It fails with ErrInvalidInput when target is not reached within maxAttempts.
func (s *Simulation) RunUntil(target int, boosts domain.BoostCounts, maxAttempts int) ([]AttemptResult, error) {
	if target < s.state.Level || target > s.table.MaxLevel() {
		return nil, fmt.Errorf("%w: target level %d outside %d..%d",
			domain.ErrInvalidInput, target, s.state.Level, s.table.MaxLevel())
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttemptsPerTrial
	}

	var history []AttemptResult
	for s.state.Level < target {
		if len(history) >= maxAttempts {
			return history, fmt.Errorf("%w: level %d not reached within %d attempts",
				domain.ErrInvalidInput, target, maxAttempts)
		}
		res, err := s.Attempt(boosts)
		if err != nil {
			return history, err
		}
		history = append(history, res)
	}
	return history, nil
}
