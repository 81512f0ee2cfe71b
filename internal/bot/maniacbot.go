package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// ManiacBot is an extremely aggressive bot that shoves frequently
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

// ChooseAction implements game.ActionProvider
func (m *ManiacBot) ChooseAction(state game.TableState, options game.Options) game.Action {
	acting := state.Acting()
	shortStack := acting.Chips <= 5*state.MinBet

	if options.Legal(game.Check) {
		// Maniacs prefer to bet
		if m.rng.Float64() < 0.85 {
			if shortStack || m.rng.Float64() < 0.3 {
				m.logger.Debug("maniac shove", "player", acting.Name)
				return game.Action{Kind: game.AllIn, Amount: acting.Chips}
			}
			if options.Legal(game.Bet) {
				bet := options.Get(game.Bet)
				return game.Action{Kind: game.Bet, Amount: bet.Amount * 3}
			}
		}
		return game.Action{Kind: game.Check}
	}

	// Facing a bet
	roll := m.rng.Float64()
	if roll < 0.4 {
		if options.Legal(game.Raise) && !shortStack {
			raise := options.Get(game.Raise)
			return game.Action{Kind: game.Raise, Amount: raise.Amount + raise.Amount/2}
		}
		m.logger.Debug("maniac shove over bet", "player", acting.Name)
		return game.Action{Kind: game.AllIn, Amount: acting.Chips}
	}
	if roll < 0.8 && options.Legal(game.Call) {
		return game.Action{Kind: game.Call, Amount: options.Get(game.Call).Amount}
	}
	return game.Action{Kind: game.Fold}
}
