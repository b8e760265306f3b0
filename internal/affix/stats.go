package affix

import "github.com/21in7/tos-fronet-sub000/internal/domain"

// OptionStat aggregates how often an option was rolled and the sum of its magnitudes
type OptionStat struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// Mean returns the average rolled magnitude, 0 when the option never rolled
func (s OptionStat) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Stats accumulates roll results for one session.
// It is not safe for concurrent use; callers serialise access per session.
type Stats struct {
	Rolls     int                `json:"rolls"`
	PerOption map[int]OptionStat `json:"per_option"`
}

// NewStats creates an empty accumulator
func NewStats() *Stats {
	return &Stats{PerOption: make(map[int]OptionStat)}
}

// Record adds one completed roll
func (s *Stats) Record(roll []domain.RolledOption) {
	if s.PerOption == nil {
		s.PerOption = make(map[int]OptionStat)
	}
	s.Rolls++
	for _, r := range roll {
		stat := s.PerOption[r.Option.ID]
		stat.Count++
		stat.Sum += r.Magnitude
		s.PerOption[r.Option.ID] = stat
	}
}

// Reset clears all counters
func (s *Stats) Reset() {
	s.Rolls = 0
	s.PerOption = make(map[int]OptionStat)
}

// Snapshot returns a deep copy that is safe to hand out
func (s *Stats) Snapshot() Stats {
	out := Stats{
		Rolls:     s.Rolls,
		PerOption: make(map[int]OptionStat, len(s.PerOption)),
	}
	for id, stat := range s.PerOption {
		out.PerOption[id] = stat
	}
	return out
}
