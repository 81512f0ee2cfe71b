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
	"github.com/lox/holdemsim/internal/session"
	"github.com/lox/holdemsim/internal/simulator"
	"github.com/lox/holdemsim/internal/statistics"
)

// SimulateCmd runs headless bot tables in parallel
type SimulateCmd struct {
	Tables      int           `help:"Number of tables to simulate (overrides config)"`
	Concurrency int           `help:"Tables played at once (overrides config)"`
	Hands       int           `help:"Hands per table (overrides config)"`
	HumanAs     string        `default:"random" help:"Bot strategy that replaces the human seat"`
	Timeout     time.Duration `default:"30s" help:"Timeout per table"`
	Output      string        `short:"o" help:"Also write the results as YAML to this file"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	if c.Tables > 0 {
		cfg.Simulation.Tables = c.Tables
	}
	if c.Concurrency > 0 {
		cfg.Simulation.Concurrency = c.Concurrency
	}
	if c.Hands > 0 {
		cfg.Table.MaximumRounds = c.Hands
	}

	logger, closeLog, err := setupLogger(cfg, log.DebugLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	seats, err := c.seats(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Tables:      cfg.Simulation.Tables,
		Concurrency: cfg.Simulation.Concurrency,
		Seats:       seats,
		Session: session.Config{
			MinPlayers:     cfg.Table.MinPlayers,
			MinBet:         cfg.Table.MinBet,
			RaiseIncrement: cfg.Table.RaiseIncrement,
			MaximumRounds:  cfg.Table.MaximumRounds,
			Seed:           cfg.Seed,
		},
		Timeout: c.Timeout,
		Logger:  logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	logger.Info("Simulation finished", "duration", time.Since(start).Round(time.Millisecond))

	console.PrintReport(os.Stdout, console.NewStyles(os.Stdout, globals.NoColor), sim.Seed(), stats)

	if c.Output != "" {
		if err := writeReport(c.Output, sim.Seed(), stats); err != nil {
			return err
		}
		logger.Info("Results written", "file", c.Output)
	}
	return nil
}

func writeReport(path string, seed int64, stats *statistics.Statistics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := stats.WriteYAML(f, seed); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// seats maps configured players to bot seats, replacing the human
func (c *SimulateCmd) seats(cfg *config.Config) ([]simulator.Seat, error) {
	humanAs, err := bot.ParseStrategy(c.HumanAs)
	if err != nil {
		return nil, fmt.Errorf("--human-as: %w", err)
	}

	seats := make([]simulator.Seat, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		strategy := humanAs
		if pc.Strategy != config.StrategyHuman {
			if strategy, err = bot.ParseStrategy(pc.Strategy); err != nil {
				return nil, fmt.Errorf("player %s: %w", pc.Name, err)
			}
		}
		seats = append(seats, simulator.Seat{Name: pc.Name, Strategy: strategy, Chips: pc.Chips})
	}
	return seats, nil
}
