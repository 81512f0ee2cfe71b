package game

import "github.com/lox/holdemsim/internal/deck"

// PlayerState is the read-only view of a player handed to providers
type PlayerState struct {
	ID        int
	Name      string
	Chips     int
	Bet       int
	TotalBet  int
	Role      Role
	Folded    bool
	Active    bool
	AllIn     bool
	HoleCards []deck.Card // Only populated for the acting player
}

// TableState is the read-only view of the table handed to providers
type TableState struct {
	HandNumber     int
	Stage          Stage
	Round          int
	Pot            int
	HighestBet     int
	BetOpened      bool
	MinBet         int
	RaiseIncrement int
	CommunityCards []deck.Card
	Players        []PlayerState
	ActingSeat     int
	Positions      Positions
}

// Acting returns the state of the player who must decide
func (ts TableState) Acting() PlayerState {
	if ts.ActingSeat < 0 || ts.ActingSeat >= len(ts.Players) {
		return PlayerState{}
	}
	return ts.Players[ts.ActingSeat]
}

// ToCall returns the chips the acting player needs to match the highest bet
func (ts TableState) ToCall() int {
	owed := ts.HighestBet - ts.Acting().Bet
	if owed < 0 {
		return 0
	}
	return owed
}

// ActionProvider chooses an action for the acting player. Providers receive
// snapshots and must not mutate game state. The hand coerces anything that
// isn't legal to a fold.
type ActionProvider interface {
	ChooseAction(state TableState, options Options) Action
}

// ProviderFunc adapts a function to the ActionProvider interface
type ProviderFunc func(state TableState, options Options) Action

// ChooseAction calls f
func (f ProviderFunc) ChooseAction(state TableState, options Options) Action {
	return f(state, options)
}

// SeatProviders dispatches decisions to a provider per player ID
type SeatProviders struct {
	Default   ActionProvider
	providers map[int]ActionProvider
}

// NewSeatProviders creates a dispatcher falling back to def
func NewSeatProviders(def ActionProvider) *SeatProviders {
	return &SeatProviders{
		Default:   def,
		providers: make(map[int]ActionProvider),
	}
}

// Set assigns a provider to the player with the given ID
func (s *SeatProviders) Set(playerID int, provider ActionProvider) {
	s.providers[playerID] = provider
}

// Get returns the provider responsible for the player with the given ID
func (s *SeatProviders) Get(playerID int) ActionProvider {
	if p, ok := s.providers[playerID]; ok {
		return p
	}
	return s.Default
}

// ChooseAction routes the decision to the acting player's provider
func (s *SeatProviders) ChooseAction(state TableState, options Options) Action {
	provider := s.Get(state.Acting().ID)
	if provider == nil {
		return Action{Kind: Fold}
	}
	return provider.ChooseAction(state, options)
}
