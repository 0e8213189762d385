package pet

// Stat bounds and the fixed balancing table.
const (
	MinStat = 0
	MaxStat = 100

	// Feeding
	FeedHungerIncrease = 20

	// Play
	PlayEnergyThreshold   = 10
	PlayHappinessIncrease = 15
	PlayEnergyDecrease    = 10
	TiredPlayPenalty      = 5

	// Sleep
	SleepEnergyIncrease = 30

	// Heal
	HealHealthIncrease = 20

	// Decay, applied at most once per UpdateStatus call
	DecayIntervalMs = 4000
	DecayHunger     = 5
	DecayEnergy     = 5
	DecayHappiness  = 2

	// Illness: the draw is uniform in [0, IllnessDrawMax] and the creature
	// falls sick when it lands below IllnessDrawThreshold.
	IllnessDrawMax       = 100
	IllnessDrawThreshold = 5
)
