package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/gearscore"
)

// Catalog is the read-only, indexed view of a loaded catalog file.
// It is safe for concurrent use since nothing mutates it after construction.
type Catalog struct {
	source   string
	checksum string
	version  string

	options         map[int]domain.Option
	optionOrder     []int
	exhibitions     map[int]domain.ExhibitionItem
	exhibitionOrder []int
	tables          map[int]domain.ReinforceTable
	baseScores      gearscore.BaseScoreTable
}

// New builds a catalog from an in-memory file after validating it
func New(f *File) (*Catalog, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}
	return newCatalog(f, "", ""), nil
}

func newCatalog(f *File, source, checksum string) *Catalog {
	c := &Catalog{
		source:      source,
		checksum:    checksum,
		version:     f.Version,
		options:     make(map[int]domain.Option, len(f.Options)),
		exhibitions: make(map[int]domain.ExhibitionItem, len(f.Exhibitions)),
		tables:      make(map[int]domain.ReinforceTable, len(f.ReinforceTables)),
	}

	for _, opt := range f.Options {
		c.options[opt.ID] = opt
		c.optionOrder = append(c.optionOrder, opt.ID)
	}
	for _, ex := range f.Exhibitions {
		ex.OptionPoolIDs = append([]int(nil), ex.OptionPoolIDs...)
		c.exhibitions[ex.ID] = ex
		c.exhibitionOrder = append(c.exhibitionOrder, ex.ID)
	}
	for _, t := range f.ReinforceTables {
		t.Entries = append([]domain.ReinforceLevelEntry(nil), t.Entries...)
		c.tables[t.EquipmentLevel] = t
	}

	if len(f.BaseScores) == 0 {
		c.baseScores = gearscore.DefaultBaseScores
	} else {
		c.baseScores = make(gearscore.BaseScoreTable, len(f.BaseScores))
		for _, row := range f.BaseScores {
			c.baseScores[row.Level] = row.Score
		}
	}

	sort.Ints(c.exhibitionOrder)
	sort.Ints(c.optionOrder)
	return c
}

// Source is the path the catalog was loaded from, empty for in-memory catalogs
func (c *Catalog) Source() string { return c.source }

// Checksum is the sha256 of the raw catalog file
func (c *Catalog) Checksum() string { return c.checksum }

// Version is the catalog file version string
func (c *Catalog) Version() string { return c.version }

// Option looks up an option by ID
func (c *Catalog) Option(id int) (domain.Option, error) {
	opt, ok := c.options[id]
	if !ok {
		return domain.Option{}, fmt.Errorf("%w: %d", domain.ErrOptionNotFound, id)
	}
	return opt, nil
}

// Options returns every option ordered by ID
func (c *Catalog) Options() []domain.Option {
	out := make([]domain.Option, 0, len(c.optionOrder))
	for _, id := range c.optionOrder {
		out = append(out, c.options[id])
	}
	return out
}

// Exhibition looks up an exhibition item by ID
func (c *Catalog) Exhibition(id int) (domain.ExhibitionItem, error) {
	ex, ok := c.exhibitions[id]
	if !ok {
		return domain.ExhibitionItem{}, fmt.Errorf("%w: %d", domain.ErrExhibitionNotFound, id)
	}
	ex.OptionPoolIDs = append([]int(nil), ex.OptionPoolIDs...)
	return ex, nil
}

// Exhibitions returns every exhibition item ordered by ID
func (c *Catalog) Exhibitions() []domain.ExhibitionItem {
	out := make([]domain.ExhibitionItem, 0, len(c.exhibitionOrder))
	for _, id := range c.exhibitionOrder {
		ex, _ := c.Exhibition(id)
		out = append(out, ex)
	}
	return out
}

// OptionPool resolves the options eligible for an exhibition, in pool order.
// The returned slice is a fresh copy the caller may keep.
func (c *Catalog) OptionPool(exhibitionID int) ([]domain.Option, error) {
	ex, ok := c.exhibitions[exhibitionID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrExhibitionNotFound, exhibitionID)
	}
	pool := make([]domain.Option, 0, len(ex.OptionPoolIDs))
	for _, id := range ex.OptionPoolIDs {
		pool = append(pool, c.options[id])
	}
	return pool, nil
}

// OptionGroups summarizes an exhibition pool by description key, heaviest group first
func (c *Catalog) OptionGroups(exhibitionID int) ([]OptionGroup, error) {
	pool, err := c.OptionPool(exhibitionID)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var groups []OptionGroup
	for _, opt := range pool {
		i, ok := index[opt.DescriptionKey]
		if !ok {
			i = len(groups)
			index[opt.DescriptionKey] = i
			groups = append(groups, OptionGroup{
				Key:         opt.DescriptionKey,
				DisplayName: GroupDisplayName(opt.DescriptionKey),
			})
		}
		groups[i].Weight += opt.Weight
		groups[i].OptionIDs = append(groups[i].OptionIDs, opt.ID)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Weight > groups[b].Weight
	})
	return groups, nil
}

// ReinforceTable looks up the reinforcement table of an equipment level
func (c *Catalog) ReinforceTable(equipmentLevel int) (domain.ReinforceTable, error) {
	t, ok := c.tables[equipmentLevel]
	if !ok {
		return domain.ReinforceTable{}, fmt.Errorf("%w: equipment level %d", domain.ErrReinforceTableNotFound, equipmentLevel)
	}
	return t, nil
}

// ReinforceLevels lists the equipment levels that have a reinforcement table
func (c *Catalog) ReinforceLevels() []int {
	levels := make([]int, 0, len(c.tables))
	for lvl := range c.tables {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// BaseScores returns the belt/shoulder base score table
func (c *Catalog) BaseScores() gearscore.BaseScoreTable {
	return c.baseScores
}

// GroupDisplayName turns a description key like "attack_percent" into "Attack Percent"
func GroupDisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
