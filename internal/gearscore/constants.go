package gearscore

// ============================================================================
// Seal
// ============================================================================

const (
	sealScale          = 0.26
	sealReinforceShare = 0.7
	sealBaseShare      = 0.3
	sealReinforceUnit  = 100
	sealGradeUnit      = 1100
)

// ============================================================================
// Ark
// ============================================================================

const (
	arkBase         = 251
	arkPerLevel     = 25.1
	arkOptionBonus  = 250
	arkQuestPenalty = 0.95
)

// ============================================================================
// Earring
// ============================================================================

const (
	earringStatDivisor = 20
	earringPerGrade    = 15
)

// ============================================================================
// Belt / Shoulder
// ============================================================================

const (
	beltFixedShare      = 0.9
	beltCompletionShare = 0.1
	beltHighOptionBonus = 100
)

// ============================================================================
// Weapon / Armor / Accessory
// ============================================================================

// Level thresholds of the top grade
const (
	topGradePenaltyFreeLevel = 470
	topGradeFullSetLevel     = 480
	accessoryTierSwitchLevel = 490
	topGradeAnchorLevel      = 460
)

const (
	avgLevelUseShare    = 0.5
	avgLevelIdentFactor = 0.33334
	avgLevelIdentShare  = 0.5

	accessoryTopBonus       = 100
	accessoryLowBonus       = 30
	accessoryPerLevelLow    = 20
	accessoryPerLevelHigh   = 18
	completionPenalty       = 0.05
	setAdvantageReduced     = 0.9
	maxEffectiveTranscend   = 10
	lowGradeTranscendFactor = 4
	lowGradeReinforceFactor = 3
	lowGradePerGrade        = 30
	lowGradePerLevel        = 1.66
	topGradeTranscendFactor = 3
	topGradeReinforceFactor = 20
	topGradePerLevel        = 20
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnknownSlot     = "Unknown slot type scores zero"
	LogMsgScoreCalculated = "Gear score calculated"
	LogMsgPublishFailed   = "Failed to publish gear score event"
)
