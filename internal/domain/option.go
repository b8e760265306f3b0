package domain

// OptionKind tells how an option's magnitude is applied to the item
type OptionKind string

const (
	OptionKindPercentage OptionKind = "percentage"
	OptionKindFlat       OptionKind = "flat"
)

// Option is a candidate affix drawn from the static option catalog.
// Options sharing a DescriptionKey belong to the same group (e.g. the grade 1..3
// variants of "attack_percent").
type Option struct {
	ID             int        `json:"id" yaml:"id"`
	Grade          int        `json:"grade" yaml:"grade"`
	Weight         float64    `json:"weight" yaml:"weight"`
	MinValue       float64    `json:"min_value" yaml:"min_value"`
	MaxValue       float64    `json:"max_value" yaml:"max_value"`
	Kind           OptionKind `json:"kind" yaml:"kind"`
	DescriptionKey string     `json:"description_key" yaml:"description_key"`
}

// ExhibitionItem defines an option container: which options are eligible and how many
// are drawn per roll.
type ExhibitionItem struct {
	ID              int    `json:"id" yaml:"id"`
	Cost            int    `json:"cost" yaml:"cost"`
	OptionSlotCount int    `json:"option_slot_count" yaml:"option_slot_count"`
	Name            string `json:"name" yaml:"name"`
	OptionPoolIDs   []int  `json:"option_pool_ids" yaml:"option_pool_ids"`
}

// RolledOption is one selected option together with its rolled magnitude
type RolledOption struct {
	Option    Option  `json:"option"`
	Magnitude float64 `json:"magnitude"`
}
