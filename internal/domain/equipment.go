package domain

// SlotType identifies which scoring branch an equipped item uses
type SlotType string

const (
	SlotWeapon    SlotType = "weapon"
	SlotArmor     SlotType = "armor"
	SlotAccessory SlotType = "accessory"
	SlotSeal      SlotType = "seal"
	SlotArk       SlotType = "ark"
	SlotEarring   SlotType = "earring"
	SlotBelt      SlotType = "belt"
	SlotShoulder  SlotType = "shoulder"
)

// AllSlotTypes lists every slot type in display order
var AllSlotTypes = []SlotType{
	SlotWeapon,
	SlotArmor,
	SlotAccessory,
	SlotSeal,
	SlotArk,
	SlotEarring,
	SlotBelt,
	SlotShoulder,
}

// IsValid reports whether s is a known slot type
func (s SlotType) IsValid() bool {
	for _, t := range AllSlotTypes {
		if t == s {
			return true
		}
	}
	return false
}

// EquipItem is the scoring input for one equipped item.
// Fields that do not apply to a slot type are ignored by its scoring branch:
//   - Ark uses ArkLevel, HasArkOption1, HasArkOption2, IsQuestArk
//   - Earring uses StatSum
//   - Belt and Shoulder use OptionCompletion and HighOption
type EquipItem struct {
	SlotType               SlotType `json:"slot_type"`
	UseLevel               int      `json:"use_level"`
	Grade                  int      `json:"grade"`
	ReinforceCount         int      `json:"reinforce_count"`
	TranscendCount         int      `json:"transcend_count"`
	IdentificationLevel    int      `json:"identification_level"`
	RandomIdentBonus       int      `json:"random_ident_bonus"`
	RandomOptionCompletion float64  `json:"random_option_completion"`
	EnchantCompletion      float64  `json:"enchant_completion"`
	GemPoints              int      `json:"gem_points"`

	ArkLevel      int  `json:"ark_level"`
	HasArkOption1 bool `json:"has_ark_option1"`
	HasArkOption2 bool `json:"has_ark_option2"`
	IsQuestArk    bool `json:"is_quest_ark"`

	StatSum int `json:"stat_sum"`

	OptionCompletion float64 `json:"option_completion"`
	HighOption       bool    `json:"high_option"`
}
