package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

// ChooseAction implements game.ActionProvider
func (r *RandBot) ChooseAction(state game.TableState, options game.Options) game.Action {
	kinds := options.Available()
	if len(kinds) == 0 {
		return game.Action{Kind: game.Fold}
	}

	kind := kinds[r.rng.IntN(len(kinds))]
	amount := options.Get(kind).Amount

	// For bets and raises, pick a random amount between the minimum and the stack
	if kind == game.Bet || kind == game.Raise {
		acting := state.Acting()
		stack := acting.Chips + acting.Bet
		if stack > amount {
			amount += r.rng.IntN(stack - amount + 1)
		}
	}

	r.logger.Debug("rand-bot", "player", state.Acting().Name, "action", kind, "amount", amount)
	return game.Action{Kind: kind, Amount: amount}
}
