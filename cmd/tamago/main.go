// Command tamago runs a virtual pet in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/moorebrett0/tamago/internal/config"
	"github.com/moorebrett0/tamago/internal/observability"
	"github.com/moorebrett0/tamago/internal/pet"
	"github.com/moorebrett0/tamago/internal/session"
	"github.com/moorebrett0/tamago/internal/species"
	"github.com/moorebrett0/tamago/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tamago: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "tamago.yaml", "path to configuration file")
	headless := flag.Bool("headless", false, "run without a UI and print each decay step until the pet dies")
	actionList := flag.String("actions", "", "comma-separated actions to apply in headless mode, e.g. feed,play,heal")
	flag.Parse()

	script, err := parseActions(*actionList)
	if err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := pet.NewRand(seed)
	clock := session.NewSystemClock()

	logger.Info("starting tamago",
		zap.String("config", *configPath),
		zap.Bool("headless", *headless),
		zap.Uint64("seed", seed),
	)

	if *headless {
		if err := runHeadless(ctx, os.Stdout, cfg, logger, clock, rng, script); err != nil && ctx.Err() == nil {
			logger.Error("headless session failed", zap.Error(err))
			return err
		}
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("creating screen", zap.Error(err))
		return err
	}
	if err := screen.Init(); err != nil {
		logger.Error("initializing screen", zap.Error(err))
		return err
	}

	app := tui.New(screen, cfg, logger, clock, rng)
	err = app.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		logger.Error("session failed", zap.Error(err))
		return err
	}
	return nil
}

// parseActions splits a comma-separated list of action names. Empty entries
// are skipped.
func parseActions(list string) ([]session.Action, error) {
	var script []session.Action
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		a, err := session.ParseAction(name)
		if err != nil {
			return nil, err
		}
		script = append(script, a)
	}
	return script, nil
}

// runHeadless plays a session, applying script in order as owner input and
// printing one line per action and decay step, until the pet dies or ctx is
// done.
func runHeadless(ctx context.Context, w io.Writer, cfg *config.Config, logger *zap.Logger, clock session.Clock, rng pet.Rand, script []session.Action) error {
	name := cfg.Pet.Name
	if name == "" {
		name = "Pet"
	}
	sp := species.Lookup(cfg.Pet.Species)
	creature := pet.NewCreature(name, sp.ID, cfg.Pet.Gender, clock.NowMs(), rng)
	sess := session.New(creature, clock, logger, cfg.Session.TickInterval)

	actions := make(chan session.Action, len(script))
	for _, a := range script {
		actions <- a
	}
	close(actions)

	fmt.Fprintf(w, "%s %s the %s (%s) hatched\n", sp.Glyph, name, sp.Name, cfg.Pet.Gender)
	return sess.Run(ctx, actions, func(ev session.Event) {
		snap := ev.Snapshot
		switch ev.Kind {
		case session.EventAction:
			note := ""
			switch ev.Outcome {
			case session.OutcomeTooTired:
				note = " (too tired)"
			case session.OutcomeNotSick:
				note = " (not sick)"
			}
			fmt.Fprintf(w, "> %s%s health=%3d hunger=%3d happiness=%3d energy=%3d\n",
				ev.Action, note, snap.Health, snap.Hunger, snap.Happiness, snap.Energy)
		case session.EventDecay, session.EventFellSick:
			sick := ""
			if snap.IsSick {
				sick = " sick"
			}
			fmt.Fprintf(w, "t=%6dms health=%3d hunger=%3d happiness=%3d energy=%3d mood=%s%s\n",
				snap.LastUpdate, snap.Health, snap.Hunger, snap.Happiness, snap.Energy, snap.Mood, sick)
		case session.EventDied:
			fmt.Fprintf(w, "%s has died...\n", snap.Name)
		}
	})
}
