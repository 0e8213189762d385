package species

// Species defines a selectable pet species and its flavored verbs.
type Species struct {
	ID          string
	Name        string
	Glyph       string
	Description string

	// Flavored verb strings for frontend messages
	Verbs Verbs

	// Idle behaviors shown when nothing else is going on
	IdleBehaviors []string
}

// Verbs are species-flavored action words for template messages.
type Verbs struct {
	Happy  string
	Eat    string
	Sleep  string
	Play   string
	Tired  string
	Heal   string
	Greet  string
	Unwell string
}

// Genders are the selectable genders, in display order.
var Genders = []string{"Male", "Female"}

// DefaultID is used when a species lookup misses.
const DefaultID = "cat"

// Registry holds all available species keyed by ID.
var Registry = map[string]*Species{
	"cat": cat,
	"dog": dog,
}

// OrderedIDs defines display order for species selection.
var OrderedIDs = []string{"cat", "dog"}

// Lookup returns the species for id, falling back to DefaultID.
func Lookup(id string) *Species {
	if sp, ok := Registry[id]; ok {
		return sp
	}
	return Registry[DefaultID]
}

// ValidGender reports whether g is one of Genders.
func ValidGender(g string) bool {
	for _, known := range Genders {
		if known == g {
			return true
		}
	}
	return false
}

var cat = &Species{
	ID:          "cat",
	Name:        "Cat",
	Glyph:       "=^.^=",
	Description: "Independent, curious, naps a lot",
	Verbs: Verbs{
		Happy:  "purrs loudly",
		Eat:    "nibbles the food delicately",
		Sleep:  "curls up in a sunbeam",
		Play:   "pounces on a ball of yarn",
		Tired:  "flicks its tail and ignores you",
		Heal:   "grudgingly accepts the medicine",
		Greet:  "rubs against your leg",
		Unwell: "hides under the bed",
	},
	IdleBehaviors: []string{
		"stares at an empty corner",
		"knocks something off the table",
		"grooms a paw",
		"sits in a box that is far too small",
	},
}

var dog = &Species{
	ID:          "dog",
	Name:        "Dog",
	Glyph:       "U^o^U",
	Description: "Loyal, loud, always hungry",
	Verbs: Verbs{
		Happy:  "wags its whole body",
		Eat:    "wolfs the food down in one bite",
		Sleep:  "flops over and starts snoring",
		Play:   "chases its tail in circles",
		Tired:  "lies down and sighs",
		Heal:   "takes the pill wrapped in cheese",
		Greet:  "bounds over barking",
		Unwell: "whimpers in its basket",
	},
	IdleBehaviors: []string{
		"sniffs every corner of the room",
		"brings you a slobbery toy",
		"barks at the mailman",
		"digs at the carpet",
	},
}
