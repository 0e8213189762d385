package pet

// Food is an immutable feeding item. Name is cosmetic.
type Food struct {
	name            string
	healthEffect    int
	happinessEffect int
}

// Apple is the stock food offered by the frontend.
var Apple = NewFood("Apple", 5, 10)

// NewFood creates a food with the given additive effects.
func NewFood(name string, healthEffect, happinessEffect int) Food {
	return Food{name: name, healthEffect: healthEffect, happinessEffect: happinessEffect}
}

func (f Food) Name() string { return f.name }
func (f Food) HealthEffect() int { return f.healthEffect }
func (f Food) HappinessEffect() int { return f.happinessEffect }

// FeedTo applies the food to c: hunger +20, health and happiness by the
// food's effects, each clamped to [0, 100].
func (f Food) FeedTo(c *Creature) {
	c.hunger = clamp(c.hunger + FeedHungerIncrease)
	c.health = clamp(c.health + f.healthEffect)
	c.happiness = clamp(c.happiness + f.happinessEffect)
}
