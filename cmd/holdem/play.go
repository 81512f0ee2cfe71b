package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/console"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/lox/holdemsim/internal/session"
)

// PlayCmd plays one session with the human seat on the console
type PlayCmd struct {
	Hands int           `help:"Number of hands to play (overrides config)"`
	Delay time.Duration `default:"0s" help:"Pause between hands"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Table.MaximumRounds = c.Hands
	}

	// Keep the console readable unless logs go elsewhere or were asked for
	minLevel := log.WarnLevel
	if globals.LogLevel != "" {
		minLevel = log.DebugLevel
	}
	logger, closeLog, err := setupLogger(cfg, minLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := randutil.Seed(cfg.Seed)
	styles := console.NewStyles(os.Stdout, globals.NoColor)
	renderer := console.NewRenderer(os.Stdout, styles)
	prompter := console.NewPrompter(os.Stdin, os.Stdout, styles, logger)

	roster, providers, err := seatPlayers(cfg, seed, prompter, logger)
	if err != nil {
		return err
	}

	fmt.Println(styles.Header.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	if !cfg.HasHuman() {
		fmt.Println(styles.Info.Render("No human seat configured, watching the bots play"))
	}

	s := session.New(session.Config{
		MinPlayers:     cfg.Table.MinPlayers,
		MinBet:         cfg.Table.MinBet,
		RaiseIncrement: cfg.Table.RaiseIncrement,
		MaximumRounds:  cfg.Table.MaximumRounds,
		Seed:           seed,
		HandDelay:      c.Delay,
	}, roster, providers,
		session.WithObserver(renderer),
		session.WithLogger(logger),
		session.WithRetireHook(renderer.Retired),
	)

	summary, err := s.Run(ctx)
	if err != nil {
		logger.Error("Session aborted", "error", err)
		return err
	}

	renderer.Standings(summary.Standings)
	renderer.Winners(summary.Winners)
	fmt.Println(styles.Info.Render(fmt.Sprintf("%d hands played, seed %d", summary.Hands, summary.Seed)))
	return nil
}

// seatPlayers builds the roster from config, giving every seat its provider
func seatPlayers(cfg *config.Config, seed int64, human game.ActionProvider, logger *log.Logger) (*game.Roster, *game.SeatProviders, error) {
	roster := game.NewRoster(nil)
	providers := game.NewSeatProviders(nil)

	for i, pc := range cfg.Players {
		p := roster.Add(pc.Name, pc.Chips)
		if pc.Strategy == config.StrategyHuman {
			providers.Set(p.ID, human)
			continue
		}

		strategy, err := bot.ParseStrategy(pc.Strategy)
		if err != nil {
			return nil, nil, fmt.Errorf("player %s: %w", pc.Name, err)
		}
		b, err := bot.New(strategy, randutil.New(randutil.Derive(seed, -(i+1))), logger.With("player", pc.Name))
		if err != nil {
			return nil, nil, err
		}
		providers.Set(p.ID, b)
	}
	return roster, providers, nil
}
