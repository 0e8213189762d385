package tui

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/moorebrett0/tamago/internal/config"
	"github.com/moorebrett0/tamago/internal/pet"
	"github.com/moorebrett0/tamago/internal/session"
	"github.com/moorebrett0/tamago/internal/species"
)

type fakeClock struct {
	ms atomic.Int64
}

func (c *fakeClock) NowMs() int64 { return c.ms.Load() }

type fixedRand int

func (r fixedRand) Intn(int) int { return int(r) }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

// rowText reads back one screen row, trailing spaces trimmed.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██████████ 100%", progressBar(100, 10))
	assert.Equal(t, "███████░░░  78%", progressBar(78, 10))
	assert.Equal(t, "░░░░░░░░░░   0%", progressBar(0, 10))
}

func TestBarColor(t *testing.T) {
	assert.Equal(t, tcell.ColorRed, barColor(20))
	assert.Equal(t, tcell.ColorYellow, barColor(50))
	assert.Equal(t, tcell.ColorGreen, barColor(51))
}

func TestKeyAction(t *testing.T) {
	tests := map[rune]session.Action{
		'f': session.ActionFeed,
		'P': session.ActionPlay,
		's': session.ActionSleep,
		'h': session.ActionHeal,
	}
	for r, want := range tests {
		got, ok := keyAction(runeKey(r))
		assert.True(t, ok, "key %q", r)
		assert.Equal(t, want, got)
	}
	_, ok := keyAction(runeKey('x'))
	assert.False(t, ok)
	_, ok = keyAction(key(tcell.KeyEnter))
	assert.False(t, ok)
	assert.True(t, isQuitKey(key(tcell.KeyEscape)))
}

func TestEventMessage(t *testing.T) {
	sp := species.Lookup("cat")
	snap := pet.Snapshot{Name: "Azat", Hunger: 80, Energy: 50}

	msg := eventMessage(session.Event{Kind: session.EventAction, Action: session.ActionFeed, Snapshot: snap}, sp)
	assert.Equal(t, "Azat nibbles the food delicately! Hunger is now at 80%.", msg)

	msg = eventMessage(session.Event{Kind: session.EventAction, Action: session.ActionPlay, Outcome: session.OutcomeTooTired, Snapshot: snap}, sp)
	assert.Contains(t, msg, "too tired")

	msg = eventMessage(session.Event{Kind: session.EventAction, Action: session.ActionHeal, Outcome: session.OutcomeNotSick, Snapshot: snap}, sp)
	assert.Contains(t, msg, "isn't sick")

	msg = eventMessage(session.Event{Kind: session.EventFellSick, Snapshot: snap}, sp)
	assert.Contains(t, msg, "feels unwell")

	assert.Equal(t, "Azat has died...", eventMessage(session.Event{Kind: session.EventDied, Snapshot: snap}, sp))
	assert.Empty(t, eventMessage(session.Event{Kind: session.EventDecay, Snapshot: snap}, sp))
	assert.Empty(t, eventMessage(session.Event{Kind: session.EventIdle, Snapshot: snap}, sp))
}

func TestIntro_NameEntry(t *testing.T) {
	in := newIntro(config.PetConfig{Species: "cat", Gender: "Male"})

	assert.Equal(t, introPending, in.handleKey(key(tcell.KeyEnter)), "empty name cannot start")
	assert.NotEmpty(t, in.hint)

	for _, r := range "Rexx" {
		in.handleKey(runeKey(r))
	}
	in.handleKey(key(tcell.KeyBackspace2))
	assert.Equal(t, "Rex", in.petName())
	assert.Equal(t, introDone, in.handleKey(key(tcell.KeyEnter)))
}

func TestIntro_NameIsCapped(t *testing.T) {
	in := newIntro(config.PetConfig{})
	for i := 0; i < maxNameLen+10; i++ {
		in.handleKey(runeKey('a'))
	}
	assert.Len(t, in.petName(), maxNameLen)
}

func TestIntro_SelectSpeciesAndGender(t *testing.T) {
	in := newIntro(config.PetConfig{Species: "dog", Gender: "Female"})
	assert.Equal(t, "dog", in.speciesID())
	assert.Equal(t, "Female", in.gender())

	in.handleKey(key(tcell.KeyRight))
	assert.Equal(t, "cat", in.speciesID())
	in.handleKey(key(tcell.KeyLeft))
	assert.Equal(t, "dog", in.speciesID())
	in.handleKey(key(tcell.KeyDown))
	assert.Equal(t, "Male", in.gender())
	in.handleKey(key(tcell.KeyUp))
	assert.Equal(t, "Female", in.gender())
}

func TestIntro_Quit(t *testing.T) {
	in := newIntro(config.PetConfig{})
	assert.Equal(t, introQuit, in.handleKey(key(tcell.KeyEscape)))
}

func TestIntro_Draw(t *testing.T) {
	s := newScreen(t)
	in := newIntro(config.PetConfig{Name: "Azat", Species: "cat", Gender: "Male"})
	in.draw(s)

	text := screenText(s)
	assert.Contains(t, text, "Enter pet name:")
	assert.Contains(t, text, "Azat")
	assert.Contains(t, text, "[ Cat ]")
	assert.Contains(t, text, "[ Male ]")
}

func TestGame_Draw(t *testing.T) {
	s := newScreen(t)
	c := pet.NewCreature("Azat", "cat", "Male", 0, fixedRand(50), pet.WithStats(100, 50, 20, 0), pet.WithSick(true))
	g := newGame(s, species.Lookup("cat"), c.Snapshot())
	g.render(session.Event{Kind: session.EventDied, Snapshot: c.Snapshot()})

	assert.Equal(t, "  =^.^=  Azat the Cat (Male)", rowText(s, 1))
	assert.Equal(t, "  Health     ████████████████████ 100%", rowText(s, 3))
	assert.Equal(t, "  Hunger     ██████████░░░░░░░░░░  50%", rowText(s, 4))
	assert.Equal(t, "  Happiness  ████░░░░░░░░░░░░░░░░  20%", rowText(s, 5))
	assert.Equal(t, "  Energy     ░░░░░░░░░░░░░░░░░░░░   0%", rowText(s, 6))
	assert.Equal(t, "  Mood: dead  [SICK]", rowText(s, 8))
	assert.Equal(t, "  Azat has died...", rowText(s, 12))
	assert.Equal(t, "  Azat has died...", rowText(s, 14))
}

func TestGame_KeepsMessageAcrossIdleFrames(t *testing.T) {
	s := newScreen(t)
	c := pet.NewCreature("Rex", "dog", "Male", 0, fixedRand(50))
	g := newGame(s, species.Lookup("dog"), c.Snapshot())

	g.render(session.Event{Kind: session.EventAction, Action: session.ActionSleep, Snapshot: c.Snapshot()})
	g.render(session.Event{Kind: session.EventIdle, Snapshot: c.Snapshot()})
	assert.Contains(t, rowText(s, 12), "flops over and starts snoring")
}

func TestGame_IdleBehaviorReplacesStaleMessage(t *testing.T) {
	s := newScreen(t)
	c := pet.NewCreature("Rex", "dog", "Male", 0, fixedRand(50))
	sp := species.Lookup("dog")
	g := newGame(s, sp, c.Snapshot())
	decay := session.Event{Kind: session.EventDecay, Snapshot: c.Snapshot()}

	g.render(session.Event{Kind: session.EventAction, Action: session.ActionSleep, Snapshot: c.Snapshot()})
	g.render(decay)
	assert.Contains(t, rowText(s, 12), "flops over and starts snoring", "first decay keeps a fresh message")

	g.render(decay)
	assert.Equal(t, "  Rex "+sp.IdleBehaviors[0]+".", rowText(s, 12))

	g.render(decay)
	assert.Equal(t, "  Rex "+sp.IdleBehaviors[1]+".", rowText(s, 12))

	g.render(session.Event{Kind: session.EventAction, Action: session.ActionFeed, Snapshot: c.Snapshot()})
	g.render(decay)
	assert.Contains(t, rowText(s, 12), "wolfs the food down", "an action resets staleness")
}

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{TickInterval: time.Millisecond},
		Pet:     config.PetConfig{Species: "dog", Gender: "Male"},
	}
}

func TestApp_IntroThenQuit(t *testing.T) {
	s := newScreen(t)
	core, logs := observer.New(zapcore.DebugLevel)
	app := New(s, testConfig(), zap.New(core), &fakeClock{}, fixedRand(50))

	for _, r := range "Rex" {
		require.NoError(t, s.PostEvent(runeKey(r)))
	}
	require.NoError(t, s.PostEvent(key(tcell.KeyEnter)))
	require.NoError(t, s.PostEvent(runeKey('f')))
	require.NoError(t, s.PostEvent(key(tcell.KeyEscape)))

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit on Esc")
	}

	started := logs.FilterMessage("session started").All()
	require.Len(t, started, 1)
	assert.Equal(t, "Rex", started[0].ContextMap()["name"])
	assert.Equal(t, "dog", started[0].ContextMap()["species"])
	assert.Len(t, logs.FilterMessage("action applied").All(), 1)
	assert.Len(t, logs.FilterMessage("player quit").All(), 1)
}

func TestApp_QuitOnIntro(t *testing.T) {
	s := newScreen(t)
	app := New(s, testConfig(), zap.NewNop(), &fakeClock{}, fixedRand(50))
	require.NoError(t, s.PostEvent(key(tcell.KeyEscape)))
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_DeathHoldsScreenThenExits(t *testing.T) {
	s := newScreen(t)
	clock := &fakeClock{}
	cfg := testConfig()
	cfg.Session.DeathPause = 10 * time.Millisecond
	cfg.Pet.Name = "Rex"
	app := New(s, cfg, zap.NewNop(), clock, fixedRand(50))

	require.NoError(t, s.PostEvent(key(tcell.KeyEnter)))

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	// Each jump past the decay window is one decay step; twenty of them empty
	// hunger and energy.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(2 * time.Millisecond):
				clock.ms.Add(pet.DecayIntervalMs + 1)
			}
		}
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit after death")
	}
	assert.Contains(t, screenText(s), "Rex has died...")
}

func TestApp_EscSkipsDeathPause(t *testing.T) {
	s := newScreen(t)
	clock := &fakeClock{}
	cfg := testConfig()
	cfg.Session.DeathPause = time.Hour
	cfg.Pet.Name = "Rex"
	app := New(s, cfg, zap.NewNop(), clock, fixedRand(50))

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	require.NoError(t, s.PostEvent(key(tcell.KeyEnter)))
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-time.After(2 * time.Millisecond):
				clock.ms.Add(pet.DecayIntervalMs + 1)
			}
		}
	}()

	// Wait for the death screen, then press Esc
	require.Eventually(t, func() bool {
		return strings.Contains(screenText(s), "Rex has died...")
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, s.PostEvent(key(tcell.KeyEscape)))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Esc did not skip the death pause")
	}
}
