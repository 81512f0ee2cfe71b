package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func facing(highest int, acting game.PlayerState) (game.TableState, game.Options) {
	p := game.NewPlayer(acting.ID, acting.Name, acting.Chips)
	p.Bet = acting.Bet

	br := game.NewBettingRound(game.Positions{Dealer: 0, SmallBlind: 1, BigBlind: 2})
	if highest > 0 {
		br.OpenWithBlinds(highest)
	} else {
		br.ResetForStage(game.Flop)
	}

	state := game.TableState{
		Stage:      br.Stage,
		HighestBet: highest,
		BetOpened:  br.Opened,
		MinBet:     10,
		Players:    []game.PlayerState{acting},
		ActingSeat: 0,
	}
	return state, br.LegalActions(p, 10, 10)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" Maniac ")
	require.NoError(t, err)
	assert.Equal(t, StrategyManiac, s)

	_, err = ParseStrategy("shark")
	assert.Error(t, err)

	for _, s := range Strategies() {
		b, err := New(s, randutil.New(1), testLogger())
		require.NoError(t, err)
		assert.NotNil(t, b)
	}
	_, err = New("human", randutil.New(1), testLogger())
	assert.Error(t, err)
}

func TestCallBot(t *testing.T) {
	bot := NewCallBot(testLogger())

	state, opts := facing(0, game.PlayerState{Name: "A", Chips: 100})
	assert.Equal(t, game.Check, bot.ChooseAction(state, opts).Kind)

	state, opts = facing(40, game.PlayerState{Name: "A", Chips: 100})
	assert.Equal(t, game.Action{Kind: game.Call, Amount: 40}, bot.ChooseAction(state, opts))

	state, opts = facing(40, game.PlayerState{Name: "A", Chips: 30})
	assert.Equal(t, game.Action{Kind: game.AllIn, Amount: 30}, bot.ChooseAction(state, opts))
}

func TestFoldBot(t *testing.T) {
	bot := NewFoldBot(testLogger())

	state, opts := facing(0, game.PlayerState{Name: "A", Chips: 100})
	assert.Equal(t, game.Check, bot.ChooseAction(state, opts).Kind)

	state, opts = facing(20, game.PlayerState{Name: "A", Chips: 100})
	assert.Equal(t, game.Fold, bot.ChooseAction(state, opts).Kind)

	state, opts = facing(20, game.PlayerState{Name: "A", Chips: 100, Bet: 20})
	assert.Equal(t, game.Call, bot.ChooseAction(state, opts).Kind, "free option is taken")
}

func TestRandBotOnlyChoosesLegalActions(t *testing.T) {
	bot := NewRandBot(randutil.New(3), testLogger())
	state, opts := facing(20, game.PlayerState{Name: "A", Chips: 100})

	for i := 0; i < 200; i++ {
		a := bot.ChooseAction(state, opts)
		require.True(t, opts.Legal(a.Kind), "illegal %s", a.Kind)
		if a.Kind == game.Raise {
			assert.GreaterOrEqual(t, a.Amount, 30)
			assert.LessOrEqual(t, a.Amount, 100)
		}
	}
}

func TestManiacBotNeverChecksAShortStack(t *testing.T) {
	bot := NewManiacBot(randutil.New(9), testLogger())
	state, opts := facing(0, game.PlayerState{Name: "A", Chips: 30})

	for i := 0; i < 100; i++ {
		a := bot.ChooseAction(state, opts)
		require.True(t, opts.Legal(a.Kind))
		assert.Contains(t, []game.ActionKind{game.AllIn, game.Check}, a.Kind)
	}
}

func TestBotsPlayCompleteHands(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		roster := game.NewRoster(nil)
		providers := game.NewSeatProviders(nil)
		for i, s := range Strategies() {
			p := roster.Add(string(s), 100+i*10)
			b, err := New(s, randutil.New(seed+int64(i)), testLogger())
			require.NoError(t, err)
			providers.Set(p.ID, b)
		}
		total := roster.TotalChips()

		pos, err := roster.AssignPositions()
		require.NoError(t, err)

		h, err := game.NewHand(game.HandConfig{
			Number:    int(seed),
			Players:   roster.Players(),
			Positions: pos,
			MinBet:    10,
			Cards:     deck.New(randutil.New(seed)),
			Provider:  providers,
			Logger:    testLogger(),
		})
		require.NoError(t, err)

		result, err := h.Play()
		require.NoError(t, err, "seed %d", seed)
		assert.NotNil(t, result.Winner)
		assert.Equal(t, total, roster.TotalChips(), "seed %d", seed)
	}
}
