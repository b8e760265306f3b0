package reinforce

// ============================================================================
// Probability Model
// ============================================================================

// Boost items each add a fifth of the base rate, rounded up
const boostDivisor = 5

// A failed attempt adds a tenth of its probability to the fail bonus, rounded up
const failBonusDivisor = 10

// ============================================================================
// Simulation
// ============================================================================

// DefaultMaxAttemptsPerTrial bounds one run so an unreachable target cannot loop forever
const DefaultMaxAttemptsPerTrial = 100000

// DefaultWorkers is used when a Monte Carlo batch does not set a worker count
const DefaultWorkers = 4

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSimulationStarted   = "Reinforcement simulation started"
	LogMsgSimulationCompleted = "Reinforcement simulation completed"
	LogMsgPublishFailed       = "Failed to publish reinforce event"
)

// Simulation modes reported back to callers
const (
	ModeSingle     = "single"
	ModeMonteCarlo = "monte_carlo"
)
