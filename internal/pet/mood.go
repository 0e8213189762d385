package pet

// Mood is a display label derived from a Snapshot.
type Mood string

const (
	MoodDead    Mood = "dead"
	MoodSick    Mood = "sick"
	MoodSleepy  Mood = "sleepy"
	MoodHungry  Mood = "hungry"
	MoodBored   Mood = "bored"
	MoodHappy   Mood = "happy"
	MoodContent Mood = "content"
)

// DetermineMood returns a mood based on priority-ordered rules.
// Priority: Dead > Sick > Sleepy > Hungry > Bored > Happy > Content
func DetermineMood(s Snapshot) Mood {
	if !s.IsAlive {
		return MoodDead
	}

	if s.IsSick {
		return MoodSick
	}

	if s.Energy < 20 {
		return MoodSleepy
	}

	// Hunger counts down as the creature gets hungrier
	if s.Hunger < 30 {
		return MoodHungry
	}

	if s.Happiness < 30 {
		return MoodBored
	}

	if s.Health > 70 && s.Hunger > 70 && s.Happiness > 70 && s.Energy > 70 {
		return MoodHappy
	}

	return MoodContent
}
