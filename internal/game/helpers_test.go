package game

import (
	"fmt"
	"testing"

	"github.com/lox/holdemsim/internal/deck"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/stretchr/testify/require"
)

// scriptedProvider replays actions per stage and player name. Anything
// without a script checks when it can, calls when it can't and folds
// otherwise.
type scriptedProvider struct {
	scripts map[Stage]map[string][]Action
	turns   map[Stage][]string
	states  []TableState
	offered map[string][]Options
}

func newScript() *scriptedProvider {
	return &scriptedProvider{
		scripts: make(map[Stage]map[string][]Action),
		turns:   make(map[Stage][]string),
		offered: make(map[string][]Options),
	}
}

func (s *scriptedProvider) on(stage Stage, name string, actions ...Action) *scriptedProvider {
	if s.scripts[stage] == nil {
		s.scripts[stage] = make(map[string][]Action)
	}
	s.scripts[stage][name] = append(s.scripts[stage][name], actions...)
	return s
}

func (s *scriptedProvider) ChooseAction(state TableState, options Options) Action {
	name := state.Acting().Name
	s.turns[state.Stage] = append(s.turns[state.Stage], name)
	s.states = append(s.states, state)
	s.offered[name] = append(s.offered[name], options)

	if queue := s.scripts[state.Stage][name]; len(queue) > 0 {
		s.scripts[state.Stage][name] = queue[1:]
		return queue[0]
	}
	return passive(options)
}

// firstState returns the first decision state seen on stage
func (s *scriptedProvider) firstState(stage Stage) (TableState, bool) {
	for _, st := range s.states {
		if st.Stage == stage {
			return st, true
		}
	}
	return TableState{}, false
}

func passive(options Options) Action {
	switch {
	case options.Legal(Check):
		return Action{Kind: Check}
	case options.Legal(Call):
		return Action{Kind: Call}
	default:
		return Action{Kind: Fold}
	}
}

// seatPlayers creates players P0, P1, ... with the given stacks
func seatPlayers(chips ...int) []*Player {
	players := make([]*Player, len(chips))
	for i, c := range chips {
		players[i] = NewPlayer(i+1, fmt.Sprintf("P%d", i), c)
	}
	return players
}

func positions(dealer, sb, bb int) Positions {
	return Positions{Dealer: dealer, SmallBlind: sb, BigBlind: bb}
}

type handOption func(*HandConfig)

func withMinBet(minBet int) handOption {
	return func(c *HandConfig) { c.MinBet = minBet }
}

func withCards(cards deck.Source) handOption {
	return func(c *HandConfig) { c.Cards = cards }
}

func withRanker(r HandRanker) handOption {
	return func(c *HandConfig) { c.Ranker = r }
}

func withObserver(o Observer) handOption {
	return func(c *HandConfig) { c.Observer = o }
}

func newTestHand(t *testing.T, players []*Player, pos Positions, provider ActionProvider, opts ...handOption) *Hand {
	t.Helper()

	cfg := HandConfig{
		Number:    1,
		Players:   players,
		Positions: pos,
		MinBet:    10,
		Cards:     deck.New(randutil.New(42)),
		Provider:  provider,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h, err := NewHand(cfg)
	require.NoError(t, err)
	return h
}

func totalChips(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.Chips
	}
	return total
}

// firstSeatWins always awards the showdown to the earliest contender
var firstSeatWins = RankerFunc(func(players []*Player, _ []deck.Card) (*Player, error) {
	if len(players) == 0 {
		return nil, ErrNoContender
	}
	return players[0], nil
})
