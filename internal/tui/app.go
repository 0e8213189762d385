// Package tui is the terminal frontend: an intro screen to name and pick the
// pet, then the status screen driven by a session.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/moorebrett0/tamago/internal/config"
	"github.com/moorebrett0/tamago/internal/pet"
	"github.com/moorebrett0/tamago/internal/session"
	"github.com/moorebrett0/tamago/internal/species"
)

// App wires a tcell screen to one pet session.
type App struct {
	screen tcell.Screen
	cfg    *config.Config
	logger *zap.Logger
	clock  session.Clock
	rng    pet.Rand
}

// New creates an App. The caller owns screen (Init before, Fini after Run).
func New(screen tcell.Screen, cfg *config.Config, logger *zap.Logger, clock session.Clock, rng pet.Rand) *App {
	return &App{
		screen: screen,
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		rng:    rng,
	}
}

// Run shows the intro, then plays until the pet dies, the user quits, or
// ctx is cancelled. Quitting and death both return nil.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := a.pollEvents(ctx)

	in := newIntro(a.cfg.Pet)
	if !a.runIntro(ctx, in, events) {
		return ctx.Err()
	}

	sp := species.Lookup(in.speciesID())
	creature := pet.NewCreature(in.petName(), sp.ID, in.gender(), a.clock.NowMs(), a.rng)
	sess := session.New(creature, a.clock, a.logger, a.cfg.Session.TickInterval)
	g := newGame(a.screen, sp, creature.Snapshot())

	gameCtx, quit := context.WithCancel(ctx)
	defer quit()

	actions := make(chan session.Action)
	go a.translate(gameCtx, events, actions, quit)

	err := sess.Run(gameCtx, actions, g.render)
	switch {
	case err == nil:
		// Pet died; hold the death screen until the pause ends or Esc
		select {
		case <-time.After(a.cfg.Session.DeathPause):
		case <-gameCtx.Done():
		}
		return nil
	case errors.Is(err, context.Canceled) && ctx.Err() == nil:
		a.logger.Info("player quit", zap.String("session", sess.ID()))
		return nil
	default:
		return err
	}
}

// runIntro feeds key events to the intro until the player starts or quits.
// It returns true when a game should start.
func (a *App) runIntro(ctx context.Context, in *intro, events <-chan tcell.Event) bool {
	in.draw(a.screen)
	for {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch in.handleKey(ev) {
				case introDone:
					return true
				case introQuit:
					return false
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
			in.draw(a.screen)
		}
	}
}

// translate turns key events into session actions until ctx is done. A quit
// key calls quit.
func (a *App) translate(ctx context.Context, events <-chan tcell.Event, actions chan<- session.Action, quit context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				quit()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					quit()
					return
				}
				act, ok := keyAction(ev)
				if !ok {
					continue
				}
				select {
				case actions <- act:
				case <-ctx.Done():
					return
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		}
	}
}

// pollEvents pumps screen events into a channel until ctx is done or the
// screen is finalized.
func (a *App) pollEvents(ctx context.Context) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events
}
