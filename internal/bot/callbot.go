package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// CallBot checks or calls every street and never raises. Facing a bet it
// can't cover it shoves when the bet is at least half its stack.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

// ChooseAction implements game.ActionProvider
func (c *CallBot) ChooseAction(state game.TableState, options game.Options) game.Action {
	acting := state.Acting()

	if action, ok := first(options, game.Check, game.Call); ok {
		c.logger.Debug("call-bot", "player", acting.Name, "action", action.Kind, "stage", state.Stage)
		return action
	}

	if options.Legal(game.AllIn) && state.ToCall()*2 >= acting.Chips+acting.Bet {
		c.logger.Debug("call-bot committing short stack", "player", acting.Name, "chips", acting.Chips)
		return game.Action{Kind: game.AllIn, Amount: acting.Chips}
	}
	return game.Action{Kind: game.Fold}
}
