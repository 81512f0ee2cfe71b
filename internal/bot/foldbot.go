package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// FoldBot is a simple bot that always folds (or checks when possible)
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

// ChooseAction implements game.ActionProvider
func (f *FoldBot) ChooseAction(state game.TableState, options game.Options) game.Action {
	if options.Legal(game.Check) {
		return game.Action{Kind: game.Check}
	}
	// The big blind's option moves no chips, so take it
	if options.Legal(game.Call) && state.ToCall() == 0 {
		return game.Action{Kind: game.Call, Amount: options.Get(game.Call).Amount}
	}
	f.logger.Debug("fold-bot folding", "player", state.Acting().Name, "toCall", state.ToCall())
	return game.Action{Kind: game.Fold}
}
