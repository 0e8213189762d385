package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/moorebrett0/tamago/internal/pet"
	"github.com/moorebrett0/tamago/internal/session"
	"github.com/moorebrett0/tamago/internal/species"
)

const barWidth = 20

// game renders the in-session screen. render runs on the session goroutine.
type game struct {
	screen  tcell.Screen
	sp      *species.Species
	message string

	// stale is set once a decay step has passed since message was written.
	stale   bool
	idleIdx int
}

func newGame(screen tcell.Screen, sp *species.Species, snap pet.Snapshot) *game {
	return &game{screen: screen, sp: sp, message: TemplateGreeting(snap, sp)}
}

// keyAction maps a key to a pet action.
func keyAction(ev *tcell.EventKey) (session.Action, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	switch ev.Rune() {
	case 'f', 'F':
		return session.ActionFeed, true
	case 'p', 'P':
		return session.ActionPlay, true
	case 's', 'S':
		return session.ActionSleep, true
	case 'h', 'H':
		return session.ActionHeal, true
	}
	return 0, false
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

func (g *game) render(ev session.Event) {
	if msg := eventMessage(ev, g.sp); msg != "" {
		g.message = msg
		g.stale = false
	} else if ev.Kind == session.EventDecay {
		if g.stale {
			g.idle(ev.Snapshot)
		}
		g.stale = true
	}
	g.draw(ev.Snapshot)
}

func (g *game) draw(snap pet.Snapshot) {
	s := g.screen
	s.Clear()

	drawText(s, 2, 1, styleBold, TemplateTitle(snap, g.sp))

	stats := []struct {
		label string
		value int
	}{
		{"Health", snap.Health},
		{"Hunger", snap.Hunger},
		{"Happiness", snap.Happiness},
		{"Energy", snap.Energy},
	}
	for i, st := range stats {
		y := 3 + i
		x := drawText(s, 2, y, styleDefault, padRight(st.label, 11))
		drawText(s, x, y, styleDefault.Foreground(barColor(st.value)), progressBar(st.value, barWidth))
	}

	x := drawText(s, 2, 8, styleDefault, "Mood: ")
	x = drawText(s, x, 8, styleDefault.Foreground(moodColor(snap.Mood)), string(snap.Mood))
	if snap.IsSick {
		drawText(s, x+2, 8, styleDeath, "[SICK]")
	}

	drawText(s, 2, 10, styleDim, TemplateHelp())
	drawText(s, 2, 12, styleDefault, g.message)

	if !snap.IsAlive {
		drawText(s, 2, 14, styleDeath, TemplateDeath(snap))
	}
	s.Show()
}

// idle replaces a stale message with the next idle behavior.
func (g *game) idle(snap pet.Snapshot) {
	if len(g.sp.IdleBehaviors) == 0 {
		return
	}
	behavior := g.sp.IdleBehaviors[g.idleIdx%len(g.sp.IdleBehaviors)]
	g.idleIdx++
	g.message = TemplateIdleBehavior(snap, behavior)
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
