package pet

// Creature holds the mutable state of one pet. It is owned by a single
// session and is not safe for concurrent use.
type Creature struct {
	// Identity, cosmetic
	name      string
	speciesID string
	gender    string

	// Stats (0–100). For hunger 100 means full.
	health    int
	hunger    int
	happiness int
	energy    int

	sick bool

	// Monotonic milliseconds; advanced only by UpdateStatus.
	lastUpdate int64

	rng Rand
}

// Snapshot is a read-only copy of a Creature.
type Snapshot struct {
	Name      string
	SpeciesID string
	Gender    string

	Health    int
	Hunger    int
	Happiness int
	Energy    int
	IsSick    bool
	IsAlive   bool

	LastUpdate int64

	Mood Mood
}

// Option overrides a starting value in NewCreature.
type Option func(*Creature)

// WithStats overrides the four starting stats. Values are clamped to [0, 100].
func WithStats(health, hunger, happiness, energy int) Option {
	return func(c *Creature) {
		c.health = clamp(health)
		c.hunger = clamp(hunger)
		c.happiness = clamp(happiness)
		c.energy = clamp(energy)
	}
}

// WithSick sets the starting illness flag.
func WithSick(sick bool) Option {
	return func(c *Creature) {
		c.sick = sick
	}
}

// NewCreature creates a healthy creature with full stats. nowMs is the
// construction timestamp that starts the first decay window; rng drives the
// illness draw and defaults to NewRand seeded with nowMs when nil.
func NewCreature(name, speciesID, gender string, nowMs int64, rng Rand, opts ...Option) *Creature {
	if rng == nil {
		rng = NewRand(uint64(nowMs))
	}
	c := &Creature{
		name:       name,
		speciesID:  speciesID,
		gender:     gender,
		health:     MaxStat,
		hunger:     MaxStat,
		happiness:  MaxStat,
		energy:     MaxStat,
		lastUpdate: nowMs,
		rng:        rng,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Creature) Name() string { return c.name }
func (c *Creature) SpeciesID() string { return c.speciesID }
func (c *Creature) Gender() string { return c.gender }
func (c *Creature) Health() int { return c.health }
func (c *Creature) Hunger() int { return c.hunger }
func (c *Creature) Happiness() int { return c.happiness }
func (c *Creature) Energy() int { return c.energy }
func (c *Creature) IsSick() bool { return c.sick }
func (c *Creature) LastUpdate() int64 { return c.lastUpdate }

// Snapshot copies the observable state and computes the mood.
func (c *Creature) Snapshot() Snapshot {
	snap := Snapshot{
		Name:       c.name,
		SpeciesID:  c.speciesID,
		Gender:     c.gender,
		Health:     c.health,
		Hunger:     c.hunger,
		Happiness:  c.happiness,
		Energy:     c.energy,
		IsSick:     c.sick,
		IsAlive:    c.Alive(),
		LastUpdate: c.lastUpdate,
	}
	snap.Mood = DetermineMood(snap)
	return snap
}

// Feed applies f and re-clamps the affected stats.
func (c *Creature) Feed(f Food) {
	f.FeedTo(c)
	c.hunger = min(c.hunger, MaxStat)
	c.health = min(c.health, MaxStat)
	c.happiness = min(c.happiness, MaxStat)
}

// Play trades energy for happiness. A creature with less than 10 energy
// refuses and loses happiness instead.
func (c *Creature) Play() {
	if c.energy >= PlayEnergyThreshold {
		c.happiness = clamp(c.happiness + PlayHappinessIncrease)
		c.energy = clamp(c.energy - PlayEnergyDecrease)
		return
	}
	c.happiness = clamp(c.happiness - TiredPlayPenalty)
}

// Sleep restores energy.
func (c *Creature) Sleep() {
	c.energy = clamp(c.energy + SleepEnergyIncrease)
}

// Heal cures illness and restores health. No-op when healthy.
func (c *Creature) Heal() {
	if !c.sick {
		return
	}
	c.health = clamp(c.health + HealHealthIncrease)
	c.sick = false
}

// UpdateStatus applies one decay step if more than DecayIntervalMs elapsed
// since the last one, then reports whether the creature is alive.
//
// A single call decays at most once and moves the window to nowMs, even if
// several intervals have passed.
func (c *Creature) UpdateStatus(nowMs int64) bool {
	if nowMs-c.lastUpdate > DecayIntervalMs {
		c.hunger = clamp(c.hunger - DecayHunger)
		c.energy = clamp(c.energy - DecayEnergy)
		c.happiness = clamp(c.happiness - DecayHappiness)

		if illnessDraw(c.rng) < IllnessDrawThreshold {
			c.sick = true
		}

		c.lastUpdate = nowMs
	}
	return c.Alive()
}

// Alive reports whether every stat is above zero.
func (c *Creature) Alive() bool {
	return c.health > 0 && c.hunger > 0 && c.happiness > 0 && c.energy > 0
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
