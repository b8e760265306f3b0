package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

// Validate checks cross-field rules the schema cannot express. It reports every
// problem found, wrapped in domain.ErrInvalidCatalog.
func Validate(f *File) error {
	if f == nil {
		return fmt.Errorf("%w: catalog is nil", domain.ErrInvalidCatalog)
	}

	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	optionIDs := make(map[int]bool, len(f.Options))
	for i, opt := range f.Options {
		if opt.ID <= 0 {
			add("option at index %d has non-positive id %d", i, opt.ID)
		}
		if optionIDs[opt.ID] {
			add("duplicate option id %d", opt.ID)
		}
		optionIDs[opt.ID] = true

		if !(opt.Weight > 0) || math.IsInf(opt.Weight, 0) {
			add("option %d has non-positive weight %v", opt.ID, opt.Weight)
		}
		if opt.MinValue > opt.MaxValue {
			add("option %d has min_value %v greater than max_value %v", opt.ID, opt.MinValue, opt.MaxValue)
		}
		if opt.Grade < domain.MinOptionGrade || opt.Grade > domain.MaxOptionGrade {
			add("option %d has grade %d outside %d..%d", opt.ID, opt.Grade, domain.MinOptionGrade, domain.MaxOptionGrade)
		}
		if opt.Kind != domain.OptionKindPercentage && opt.Kind != domain.OptionKindFlat {
			add("option %d has unknown kind %q", opt.ID, opt.Kind)
		}
		if strings.TrimSpace(opt.DescriptionKey) == "" {
			add("option %d has empty description_key", opt.ID)
		}
	}

	exhibitionIDs := make(map[int]bool, len(f.Exhibitions))
	for _, ex := range f.Exhibitions {
		if exhibitionIDs[ex.ID] {
			add("duplicate exhibition id %d", ex.ID)
		}
		exhibitionIDs[ex.ID] = true

		if ex.OptionSlotCount < 1 {
			add("exhibition %d has option_slot_count %d", ex.ID, ex.OptionSlotCount)
		}
		if ex.Cost < 0 {
			add("exhibition %d has negative cost", ex.ID)
		}
		inPool := make(map[int]bool, len(ex.OptionPoolIDs))
		for _, id := range ex.OptionPoolIDs {
			if !optionIDs[id] {
				add("exhibition %d references unknown option %d", ex.ID, id)
			}
			if inPool[id] {
				add("exhibition %d lists option %d twice", ex.ID, id)
			}
			inPool[id] = true
		}
	}

	levels := make(map[int]bool, len(f.ReinforceTables))
	for _, table := range f.ReinforceTables {
		if levels[table.EquipmentLevel] {
			add("duplicate reinforce table for equipment level %d", table.EquipmentLevel)
		}
		levels[table.EquipmentLevel] = true

		for i, entry := range table.Entries {
			if entry.Step != i+1 {
				add("reinforce table %d: entry %d has step %d, want %d", table.EquipmentLevel, i, entry.Step, i+1)
			}
			if entry.BaseSuccessRate < 0 || entry.BaseSuccessRate > domain.ProbabilityScale {
				add("reinforce table %d: step %d rate %d outside 0..%d",
					table.EquipmentLevel, entry.Step, entry.BaseSuccessRate, domain.ProbabilityScale)
			}
		}
	}

	scoreLevels := make(map[int]bool, len(f.BaseScores))
	for _, row := range f.BaseScores {
		if scoreLevels[row.Level] {
			add("duplicate base score for level %d", row.Level)
		}
		scoreLevels[row.Level] = true
		if row.Score < 0 {
			add("base score for level %d is negative", row.Level)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
