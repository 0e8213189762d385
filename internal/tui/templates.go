package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/moorebrett0/tamago/internal/pet"
	"github.com/moorebrett0/tamago/internal/session"
	"github.com/moorebrett0/tamago/internal/species"
)

// progressBar renders a visual bar like ████████░░ 78%
func progressBar(value, width int) string {
	filled := value * width / pet.MaxStat
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled
	return fmt.Sprintf("%s%s %3d%%", strings.Repeat("█", filled), strings.Repeat("░", empty), value)
}

// barColor shades a stat bar by how close it is to zero.
func barColor(value int) tcell.Color {
	switch {
	case value <= 20:
		return tcell.ColorRed
	case value <= 50:
		return tcell.ColorYellow
	default:
		return tcell.ColorGreen
	}
}

// moodColor returns the display color for the mood.
func moodColor(mood pet.Mood) tcell.Color {
	switch mood {
	case pet.MoodHappy:
		return tcell.ColorGreen
	case pet.MoodContent:
		return tcell.ColorBlue
	case pet.MoodBored:
		return tcell.ColorYellow
	case pet.MoodHungry:
		return tcell.ColorFuchsia
	case pet.MoodSleepy:
		return tcell.ColorGray
	case pet.MoodSick, pet.MoodDead:
		return tcell.ColorRed
	default:
		return tcell.ColorBlue
	}
}

func TemplateTitle(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s  %s the %s (%s)", sp.Glyph, snap.Name, sp.Name, snap.Gender)
}

func TemplateFeeding(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s %s! Hunger is now at %d%%.", snap.Name, sp.Verbs.Eat, snap.Hunger)
}

func TemplatePlay(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s %s!", snap.Name, sp.Verbs.Play)
}

func TemplateTooTired(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s is too tired to play and %s.", snap.Name, sp.Verbs.Tired)
}

func TemplateSleep(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s %s. Energy is now at %d%%.", snap.Name, sp.Verbs.Sleep, snap.Energy)
}

func TemplateHeal(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s %s and feels better.", snap.Name, sp.Verbs.Heal)
}

func TemplateNotSick(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s isn't sick. %s %s.", snap.Name, snap.Name, sp.Verbs.Happy)
}

func TemplateFellSick(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s feels unwell and %s. Try healing.", snap.Name, sp.Verbs.Unwell)
}

func TemplateGreeting(snap pet.Snapshot, sp *species.Species) string {
	return fmt.Sprintf("%s %s.", snap.Name, sp.Verbs.Greet)
}

func TemplateIdleBehavior(snap pet.Snapshot, behavior string) string {
	return fmt.Sprintf("%s %s.", snap.Name, behavior)
}

func TemplateDeath(snap pet.Snapshot) string {
	return fmt.Sprintf("%s has died...", snap.Name)
}

func TemplateHelp() string {
	return "[f] Feed  [p] Play  [s] Sleep  [h] Heal  [Esc] Quit"
}

// eventMessage returns the message line for ev, or "" to keep the current one.
func eventMessage(ev session.Event, sp *species.Species) string {
	snap := ev.Snapshot
	switch ev.Kind {
	case session.EventAction:
		switch ev.Action {
		case session.ActionFeed:
			return TemplateFeeding(snap, sp)
		case session.ActionPlay:
			if ev.Outcome == session.OutcomeTooTired {
				return TemplateTooTired(snap, sp)
			}
			return TemplatePlay(snap, sp)
		case session.ActionSleep:
			return TemplateSleep(snap, sp)
		case session.ActionHeal:
			if ev.Outcome == session.OutcomeNotSick {
				return TemplateNotSick(snap, sp)
			}
			return TemplateHeal(snap, sp)
		}
	case session.EventFellSick:
		return TemplateFellSick(snap, sp)
	case session.EventDied:
		return TemplateDeath(snap)
	}
	return ""
}
