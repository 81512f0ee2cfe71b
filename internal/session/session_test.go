package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shove = game.ProviderFunc(func(game.TableState, game.Options) game.Action {
	return game.Action{Kind: game.AllIn}
})

func newRoster(chips ...int) *game.Roster {
	names := []string{"Phill", "Doyle", "Daniel", "Chris", "Johnny", "You"}
	r := game.NewRoster(nil)
	for i, c := range chips {
		r.Add(names[i], c)
	}
	return r
}

func defaultConfig() Config {
	return Config{
		MinPlayers:    2,
		MinBet:        10,
		MaximumRounds: 10,
		Seed:          42,
	}
}

func botProviders(t *testing.T, roster *game.Roster, seed int64) *game.SeatProviders {
	t.Helper()
	providers := game.NewSeatProviders(nil)
	strategies := bot.Strategies()
	for i, p := range roster.Players() {
		b, err := bot.New(strategies[i%len(strategies)], randutil.New(seed+int64(i)), testLogger())
		require.NoError(t, err)
		providers.Set(p.ID, b)
	}
	return providers
}

func TestSessionPlaysHandsAndConservesChips(t *testing.T) {
	roster := newRoster(100, 100, 100, 100)
	s := New(defaultConfig(), roster, botProviders(t, roster, 1))

	summary, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, summary.Hands, 1)
	assert.LessOrEqual(t, summary.Hands, 10)
	assert.Len(t, summary.Results, summary.Hands)
	assert.Equal(t, 400, roster.TotalChips())
	assert.Len(t, summary.Standings, 4)
	require.NotEmpty(t, summary.Winners)
	assert.Equal(t, summary.Standings[0].Chips, summary.Winners[0].Chips)
	assert.Equal(t, int64(42), summary.Seed)

	for i, res := range summary.Results {
		assert.Equal(t, i+1, res.Number)
	}
}

func TestSessionStopsWhenOnePlayerRemains(t *testing.T) {
	roster := newRoster(100, 100)

	var retired []string
	s := New(defaultConfig(), roster, shove, WithRetireHook(func(players []*game.Player) {
		for _, p := range players {
			retired = append(retired, p.Name)
		}
	}))

	summary, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Hands)
	assert.True(t, summary.Results[0].Showdown)
	require.Len(t, summary.Winners, 1)
	assert.Equal(t, 200, summary.Winners[0].Chips)
	assert.Len(t, summary.Retired, 1)
	assert.Equal(t, retired, []string{summary.Retired[0].Name})
	assert.False(t, summary.Retired[0].Active)
}

func TestSessionTooFewPlayers(t *testing.T) {
	_, err := New(defaultConfig(), newRoster(100), shove).Run(context.Background())
	assert.ErrorIs(t, err, game.ErrTooFewPlayers)

	cfg := defaultConfig()
	cfg.MinPlayers = 3
	_, err = New(cfg, newRoster(100, 100), shove).Run(context.Background())
	assert.ErrorIs(t, err, game.ErrTooFewPlayers)
}

func TestSessionIsDeterministicForSeed(t *testing.T) {
	play := func() []int {
		roster := newRoster(100, 100, 100, 100, 100)
		summary, err := New(defaultConfig(), roster, botProviders(t, roster, 7)).Run(context.Background())
		require.NoError(t, err)

		chips := make([]int, 0, roster.Len())
		for _, p := range roster.Players() {
			chips = append(chips, p.Chips)
		}
		chips = append(chips, summary.Hands)
		return chips
	}
	assert.Equal(t, play(), play())
}

func TestSessionHandErrorsAreFatal(t *testing.T) {
	broken := game.RankerFunc(func([]*game.Player, []deck.Card) (*game.Player, error) {
		return nil, errors.New("ranker exploded")
	})

	_, err := New(defaultConfig(), newRoster(100, 100), shove, WithRanker(broken)).Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "hand 1")
	assert.ErrorContains(t, err, "ranker exploded")
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(defaultConfig(), newRoster(100, 100), shove).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionPausesBetweenHands(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mockClock := quartz.NewMock(t)
	roster := newRoster(1000, 1000, 1000)
	cfg := defaultConfig()
	cfg.MaximumRounds = 3
	cfg.HandDelay = 5 * time.Second

	check := game.ProviderFunc(func(_ game.TableState, opts game.Options) game.Action {
		if opts.Legal(game.Check) {
			return game.Action{Kind: game.Check}
		}
		return game.Action{Kind: game.Call}
	})

	type outcome struct {
		summary *Summary
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		summary, err := New(cfg, roster, check, WithClock(mockClock)).Run(ctx)
		done <- outcome{summary, err}
	}()

	for {
		select {
		case out := <-done:
			require.NoError(t, out.err)
			assert.Equal(t, 3, out.summary.Hands)
			assert.GreaterOrEqual(t, out.summary.Elapsed, 10*time.Second)
			return
		default:
			time.Sleep(5 * time.Millisecond)
			mockClock.Advance(cfg.HandDelay).MustWait(ctx)
		}
	}
}
