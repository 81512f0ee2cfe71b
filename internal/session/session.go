// Package session plays a sequence of hands over one roster of players.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
)

// Config holds the table rules for a session
type Config struct {
	MinPlayers     int
	MinBet         int
	RaiseIncrement int
	MaximumRounds  int
	Seed           int64         // 0 picks a time based seed
	HandDelay      time.Duration // Pause between hands, 0 for none
}

// Summary describes a finished session
type Summary struct {
	Hands     int
	Results   []*game.HandResult
	Standings []*game.Player
	Winners   []*game.Player
	Retired   []*game.Player
	Seed      int64
	Elapsed   time.Duration
}

// Option configures a Session
type Option func(*Session)

// WithObserver sends every hand event to o
func WithObserver(o game.Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithRanker replaces the showdown ranker
func WithRanker(r game.HandRanker) Option {
	return func(s *Session) { s.ranker = r }
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock sets the clock used for timing and pauses
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithRetireHook calls fn with the players knocked out after each hand
func WithRetireHook(fn func([]*game.Player)) Option {
	return func(s *Session) { s.onRetire = fn }
}

// Session deals hands one at a time over a shared roster. Each hand gets a
// freshly shuffled deck derived from the session seed.
type Session struct {
	cfg      Config
	roster   *game.Roster
	provider game.ActionProvider
	ranker   game.HandRanker
	observer game.Observer
	logger   *log.Logger
	clock    quartz.Clock
	onRetire func([]*game.Player)
}

// New creates a session over roster. provider decides for every seat.
func New(cfg Config, roster *game.Roster, provider game.ActionProvider, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		roster:   roster,
		provider: provider,
		logger:   log.New(io.Discard),
		clock:    quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.MinPlayers < 2 {
		s.cfg.MinPlayers = 2
	}
	s.cfg.Seed = randutil.Seed(s.cfg.Seed)
	s.logger = s.logger.WithPrefix("session")
	return s
}

// Seed returns the seed the session deals with
func (s *Session) Seed() int64 {
	return s.cfg.Seed
}

// Run plays up to MaximumRounds hands. It stops early when a single player
// is left with chips. Errors from a hand are fatal to the session.
func (s *Session) Run(ctx context.Context) (*Summary, error) {
	if active := s.roster.ActiveCount(); active < s.cfg.MinPlayers {
		return nil, fmt.Errorf("%w: %d players, need %d", game.ErrTooFewPlayers, active, s.cfg.MinPlayers)
	}

	start := s.clock.Now()
	summary := &Summary{Seed: s.cfg.Seed}

	pos, err := s.roster.AssignPositions()
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session started", "players", s.roster.ActiveCount(), "hands", s.cfg.MaximumRounds, "seed", s.cfg.Seed)

	for number := 1; number <= s.cfg.MaximumRounds; number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if number > 1 {
			if err := s.pause(ctx); err != nil {
				return nil, err
			}
		}

		result, err := s.playHand(number, pos)
		if err != nil {
			s.logger.Error("Hand failed", "hand", number, "error", err)
			return nil, fmt.Errorf("hand %d: %w", number, err)
		}
		summary.Hands++
		summary.Results = append(summary.Results, result)

		s.logger.Info("Hand complete",
			"hand", number,
			"winner", result.Winner.Name,
			"pot", result.Pot,
			"showdown", result.Showdown,
			"duration", result.Duration)

		if retired := s.roster.RetireBusted(); len(retired) > 0 {
			summary.Retired = append(summary.Retired, retired...)
			for _, p := range retired {
				s.logger.Info("Player eliminated", "player", p.Name)
			}
			if s.onRetire != nil {
				s.onRetire(retired)
			}
		}

		if s.roster.ActiveCount() < 2 {
			s.logger.Info("One player holds every chip", "hands", summary.Hands)
			break
		}
		if number == s.cfg.MaximumRounds {
			break
		}

		pos, err = s.roster.Rotate()
		if err != nil {
			return nil, err
		}
	}

	summary.Standings = s.roster.Standings()
	summary.Winners = s.roster.Leaders()
	summary.Elapsed = s.clock.Since(start)
	return summary, nil
}

func (s *Session) playHand(number int, pos game.Positions) (*game.HandResult, error) {
	seed := randutil.Derive(s.cfg.Seed, number)

	h, err := game.NewHand(game.HandConfig{
		Number:         number,
		Players:        s.roster.Players(),
		Positions:      pos,
		MinBet:         s.cfg.MinBet,
		RaiseIncrement: s.cfg.RaiseIncrement,
		Cards:          deck.New(randutil.New(seed)),
		Provider:       s.provider,
		Ranker:         s.ranker,
		Observer:       s.observer,
		Logger:         s.logger,
		Clock:          s.clock,
	})
	if err != nil {
		return nil, err
	}
	return h.Play()
}

// pause waits HandDelay between hands, returning early if ctx is done
func (s *Session) pause(ctx context.Context) error {
	if s.cfg.HandDelay <= 0 {
		return nil
	}

	done := make(chan struct{})
	timer := s.clock.AfterFunc(s.cfg.HandDelay, func() {
		close(done)
	}, "session", "pause")
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
