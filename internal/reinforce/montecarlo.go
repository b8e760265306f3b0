package reinforce

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// MonteCarloParams describes a batch of independent reinforcement runs
type MonteCarloParams struct {
	Table               domain.ReinforceTable
	StartLevel          int
	TargetLevel         int
	Boosts              domain.BoostCounts
	Trials              int
	Seed                uint64
	Workers             int
	MaxAttemptsPerTrial int
}

// Stats summarizes integer samples
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"variance"`
	StdDev float64 `json:"stddev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// MonteCarloResult aggregates a batch. Trial i always uses the random stream
// (Seed, i), so the result depends only on the params and not on scheduling.
type MonteCarloResult struct {
	Trials             int    `json:"trials"`
	Seed               uint64 `json:"seed"`
	Attempts           Stats  `json:"attempts"`
	TotalSuccesses     int    `json:"total_successes"`
	TotalFailures      int    `json:"total_failures"`
	PeakFailBonus      int    `json:"peak_fail_bonus"`
	FailBonusAtSuccess Stats  `json:"fail_bonus_at_success"`
}

type trialOutcome struct {
	attempts  int
	successes int
	failures  int
	peakBonus int
	bonusUsed []int
}

// RunMonteCarlo runs p.Trials independent simulations from StartLevel to
// TargetLevel on a bounded errgroup and summarizes attempts per trial.
func RunMonteCarlo(ctx context.Context, p MonteCarloParams) (*MonteCarloResult, error) {
	if p.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive", domain.ErrInvalidInput)
	}
	if p.StartLevel < 0 || p.TargetLevel < p.StartLevel || p.TargetLevel > p.Table.MaxLevel() {
		return nil, fmt.Errorf("%w: levels %d..%d outside 0..%d",
			domain.ErrInvalidInput, p.StartLevel, p.TargetLevel, p.Table.MaxLevel())
	}
	workers := p.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	maxAttempts := p.MaxAttemptsPerTrial
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttemptsPerTrial
	}

	outcomes := make([]trialOutcome, p.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < p.Trials; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := runTrial(p, utils.NewStreamSource(p.Seed, uint64(i)), maxAttempts)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &MonteCarloResult{Trials: p.Trials, Seed: p.Seed}
	attempts := make([]int, p.Trials)
	var bonusUsed []int
	for i, out := range outcomes {
		attempts[i] = out.attempts
		result.TotalSuccesses += out.successes
		result.TotalFailures += out.failures
		result.PeakFailBonus = max(result.PeakFailBonus, out.peakBonus)
		bonusUsed = append(bonusUsed, out.bonusUsed...)
	}
	result.Attempts = calcStats(attempts)
	result.FailBonusAtSuccess = calcStats(bonusUsed)

	return result, nil
}

// runTrial reinforces one item to the target level, recording the fail bonus
// that was in effect on each successful attempt
func runTrial(p MonteCarloParams, rng utils.RandomSource, maxAttempts int) (trialOutcome, error) {
	sim, err := NewSimulation(p.Table, p.StartLevel, rng)
	if err != nil {
		return trialOutcome{}, err
	}

	var out trialOutcome
	for sim.State().Level < p.TargetLevel {
		if out.attempts >= maxAttempts {
			return out, fmt.Errorf("%w: level %d not reached within %d attempts",
				domain.ErrInvalidInput, p.TargetLevel, maxAttempts)
		}
		bonus := sim.State().FailBonus
		res, err := sim.Attempt(p.Boosts)
		if err != nil {
			return out, err
		}
		out.attempts++
		if res.Success {
			out.successes++
			out.bonusUsed = append(out.bonusUsed, bonus)
		} else {
			out.failures++
			out.peakBonus = max(out.peakBonus, res.FailBonusAfter)
		}
	}
	return out, nil
}

// calcStats computes mean, population variance and interpolated percentiles
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(sorted[n-1])
		}
		f := pos - float64(i)
		return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
	}

	return Stats{
		Mean:   mean,
		Var:    variance,
		StdDev: math.Sqrt(variance),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
	}
}
