// Package session runs the owner's session loop around a single pet.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moorebrett0/tamago/internal/pet"
)

// EventKind says what a frame did.
type EventKind int

const (
	// EventIdle is a tick inside the decay window.
	EventIdle EventKind = iota
	// EventDecay is a tick that applied a decay step.
	EventDecay
	// EventFellSick is a decay step that made the pet sick.
	EventFellSick
	// EventDied means the pet was observed dead.
	EventDied
	// EventAction is an applied owner action.
	EventAction
)

// Outcome qualifies an EventAction.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	// OutcomeTooTired: play refused, happiness penalty taken.
	OutcomeTooTired
	// OutcomeNotSick: heal on a healthy pet, nothing changed.
	OutcomeNotSick
)

// Event is handed to the renderer once per frame or action.
type Event struct {
	Kind     EventKind
	Action   Action
	Outcome  Outcome
	Snapshot pet.Snapshot
}

// Session owns one pet for its whole life. All methods must be called from
// one goroutine; Run provides that goroutine.
type Session struct {
	id           string
	creature     *pet.Creature
	clock        Clock
	logger       *zap.Logger
	tickInterval time.Duration
	food         pet.Food

	over bool
}

// New creates a session around c. tickInterval is the frame cadence used by Run.
func New(c *pet.Creature, clock Clock, logger *zap.Logger, tickInterval time.Duration) *Session {
	id := uuid.New().String()
	return &Session{
		id:           id,
		creature:     c,
		clock:        clock,
		logger:       logger.With(zap.String("session", id)),
		tickInterval: tickInterval,
		food:         pet.Apple,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Over reports whether death has been observed.
func (s *Session) Over() bool { return s.over }

// Snapshot returns the pet's current state.
func (s *Session) Snapshot() pet.Snapshot { return s.creature.Snapshot() }

// Do applies a to the pet. Once the session is over it returns ErrSessionOver
// and leaves the pet untouched.
func (s *Session) Do(a Action) (Event, error) {
	if s.over {
		return Event{}, ErrSessionOver
	}

	outcome := OutcomeApplied
	switch a {
	case ActionFeed:
		s.creature.Feed(s.food)
	case ActionPlay:
		if s.creature.Energy() < pet.PlayEnergyThreshold {
			outcome = OutcomeTooTired
		}
		s.creature.Play()
	case ActionSleep:
		s.creature.Sleep()
	case ActionHeal:
		if !s.creature.IsSick() {
			outcome = OutcomeNotSick
		}
		s.creature.Heal()
	default:
		return Event{}, ErrUnknownAction
	}

	snap := s.creature.Snapshot()
	s.logger.Debug("action applied",
		zap.Stringer("action", a),
		zap.Int("health", snap.Health),
		zap.Int("hunger", snap.Hunger),
		zap.Int("happiness", snap.Happiness),
		zap.Int("energy", snap.Energy),
	)
	return Event{Kind: EventAction, Action: a, Outcome: outcome, Snapshot: snap}, nil
}

// Tick runs the pet's periodic update against the session clock.
func (s *Session) Tick() Event {
	if s.over {
		return Event{Kind: EventDied, Snapshot: s.creature.Snapshot()}
	}

	wasSick := s.creature.IsSick()
	last := s.creature.LastUpdate()
	now := s.clock.NowMs()
	alive := s.creature.UpdateStatus(now)
	snap := s.creature.Snapshot()

	switch {
	case !alive:
		s.over = true
		s.logger.Info("pet died",
			zap.String("name", snap.Name),
			zap.Int64("at_ms", now),
			zap.Int("health", snap.Health),
			zap.Int("hunger", snap.Hunger),
			zap.Int("happiness", snap.Happiness),
			zap.Int("energy", snap.Energy),
		)
		return Event{Kind: EventDied, Snapshot: snap}
	case snap.IsSick && !wasSick:
		s.logger.Info("pet fell sick", zap.String("name", snap.Name), zap.Int64("at_ms", now))
		return Event{Kind: EventFellSick, Snapshot: snap}
	case snap.LastUpdate != last:
		s.logger.Debug("decay step", zap.Int64("at_ms", now), zap.String("mood", string(snap.Mood)))
		return Event{Kind: EventDecay, Snapshot: snap}
	}
	return Event{Kind: EventIdle, Snapshot: snap}
}

// Run drives the session until the pet dies (returns nil) or ctx is done
// (returns ctx.Err()). Actions received on actions are applied between
// frames; render is called on this goroutine for every event.
func (s *Session) Run(ctx context.Context, actions <-chan Action, render func(Event)) error {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.logger.Info("session started",
		zap.String("name", s.creature.Name()),
		zap.String("species", s.creature.SpeciesID()),
		zap.String("gender", s.creature.Gender()),
		zap.Duration("tick_interval", s.tickInterval),
	)

	// Immediate first frame
	ev := s.Tick()
	render(ev)
	if ev.Kind == EventDied {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", zap.Error(ctx.Err()))
			return ctx.Err()
		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			ev, err := s.Do(a)
			if err != nil {
				s.logger.Warn("action rejected", zap.Stringer("action", a), zap.Error(err))
				continue
			}
			render(ev)
		case <-ticker.C:
			ev = s.Tick()
			render(ev)
			if ev.Kind == EventDied {
				return nil
			}
		}
	}
}
