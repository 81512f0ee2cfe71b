// Package simulator plays many bot-only sessions concurrently and aggregates
// the outcome per strategy.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/lox/holdemsim/internal/session"
	"github.com/lox/holdemsim/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Seat describes one bot at every simulated table
type Seat struct {
	Name     string
	Strategy bot.Strategy
	Chips    int
}

// Config holds configuration for running simulations
type Config struct {
	Tables      int
	Concurrency int
	Seats       []Seat
	Session     session.Config // Seed here is the root seed for all tables
	Timeout     time.Duration  // Per table, 0 for none
	Logger      *log.Logger
}

// Simulator runs batches of bot sessions
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	config.Session.Seed = randutil.Seed(config.Session.Seed)
	config.Session.HandDelay = 0

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger.WithPrefix("simulator")}
}

// Seed returns the root seed every table derives from
func (s *Simulator) Seed() int64 {
	return s.config.Session.Seed
}

// Run plays every table and returns the aggregate statistics. The first table
// to fail cancels the rest.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Tables <= 0 {
		return nil, fmt.Errorf("invalid tables count: %d", s.config.Tables)
	}
	if len(s.config.Seats) < 2 {
		return nil, fmt.Errorf("%w: %d seats", game.ErrTooFewPlayers, len(s.config.Seats))
	}

	s.logger.Info("Starting simulation",
		"tables", s.config.Tables,
		"concurrency", s.config.Concurrency,
		"seed", s.config.Session.Seed)

	results := make([]statistics.TableResult, s.config.Tables)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)

	for i := range s.config.Tables {
		g.Go(func() error {
			result, err := s.playTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation complete", "tables", stats.Tables, "hands", stats.Hands)
	return stats, nil
}

// playTable runs one session with freshly seeded bots
func (s *Simulator) playTable(ctx context.Context, index int) (statistics.TableResult, error) {
	seed := randutil.Derive(s.config.Session.Seed, index)

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	roster := game.NewRoster(nil)
	providers := game.NewSeatProviders(nil)
	strategies := make(map[int]bot.Strategy, len(s.config.Seats))
	start := make(map[int]int, len(s.config.Seats))

	for i, seat := range s.config.Seats {
		p := roster.Add(seat.Name, seat.Chips)
		b, err := bot.New(seat.Strategy, randutil.New(randutil.Derive(seed, i+1)), s.logger)
		if err != nil {
			return statistics.TableResult{}, err
		}
		providers.Set(p.ID, b)
		strategies[p.ID] = seat.Strategy
		start[p.ID] = p.Chips
	}

	cfg := s.config.Session
	cfg.Seed = seed
	summary, err := session.New(cfg, roster, providers, session.WithLogger(s.logger)).Run(ctx)
	if err != nil {
		return statistics.TableResult{}, err
	}

	result := statistics.TableResult{
		Seed:  seed,
		Hands: summary.Hands,
		Pots:  make([]int, 0, len(summary.Results)),
	}
	for _, r := range summary.Results {
		if r.Showdown {
			result.Showdowns++
		}
		result.Pots = append(result.Pots, r.Pot)
	}

	winners := make(map[int]bool, len(summary.Winners))
	for _, p := range summary.Winners {
		winners[p.ID] = true
	}
	for _, p := range roster.Players() {
		result.Seats = append(result.Seats, statistics.SeatResult{
			Name:     p.Name,
			Strategy: string(strategies[p.ID]),
			Start:    start[p.ID],
			Final:    p.Chips,
			Winner:   winners[p.ID],
		})
	}

	s.logger.Debug("Table complete", "table", index+1, "hands", result.Hands, "showdowns", result.Showdowns)
	return result, nil
}
