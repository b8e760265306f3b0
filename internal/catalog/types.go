package catalog

import "github.com/21in7/tos-fronet-sub000/internal/domain"

// File is the on-disk catalog document, in JSON or YAML
type File struct {
	Version         string                  `json:"version" yaml:"version"`
	Description     string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Options         []domain.Option         `json:"options" yaml:"options"`
	Exhibitions     []domain.ExhibitionItem `json:"exhibitions" yaml:"exhibitions"`
	ReinforceTables []domain.ReinforceTable `json:"reinforce_tables" yaml:"reinforce_tables"`
	BaseScores      []BaseScoreDef          `json:"base_scores,omitempty" yaml:"base_scores,omitempty"`
}

// BaseScoreDef is one row of the belt/shoulder base score table
type BaseScoreDef struct {
	Level int `json:"level" yaml:"level"`
	Score int `json:"score" yaml:"score"`
}

// OptionGroup summarizes the options of one description key inside an exhibition pool
type OptionGroup struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Weight      float64 `json:"weight"`
	OptionIDs   []int   `json:"option_ids"`
}
