package session

import (
	"errors"
	"fmt"
	"strings"
)

// Action is an owner gesture the session applies to its pet.
type Action int

const (
	ActionFeed Action = iota + 1
	ActionPlay
	ActionSleep
	ActionHeal
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrSessionOver   = errors.New("session over")
)

var actionNames = map[Action]string{
	ActionFeed:  "feed",
	ActionPlay:  "play",
	ActionSleep: "sleep",
	ActionHeal:  "heal",
}

// Actions lists every action in menu order.
var Actions = []Action{ActionFeed, ActionPlay, ActionSleep, ActionHeal}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction maps a case-insensitive name to its Action.
func ParseAction(name string) (Action, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == lower {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
