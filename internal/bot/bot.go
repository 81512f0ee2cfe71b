// Package bot provides computer opponents that implement game.ActionProvider.
package bot

import (
	"fmt"
	rand "math/rand/v2"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// Strategy names a bot behaviour
type Strategy string

const (
	StrategyCall   Strategy = "call"
	StrategyFold   Strategy = "fold"
	StrategyRandom Strategy = "random"
	StrategyManiac Strategy = "maniac"
)

// Strategies returns the known bot strategies in sorted order
func Strategies() []Strategy {
	s := []Strategy{StrategyCall, StrategyFold, StrategyRandom, StrategyManiac}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// ParseStrategy normalises a strategy name
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown bot strategy %q", name)
}

// New creates a bot for the given strategy
func New(strategy Strategy, rng *rand.Rand, logger *log.Logger) (game.ActionProvider, error) {
	logger = logger.WithPrefix("bot")
	switch strategy {
	case StrategyCall:
		return NewCallBot(logger), nil
	case StrategyFold:
		return NewFoldBot(logger), nil
	case StrategyRandom:
		return NewRandBot(rng, logger), nil
	case StrategyManiac:
		return NewManiacBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", strategy)
	}
}

// first returns the first legal action among kinds, using the default amount
func first(options game.Options, kinds ...game.ActionKind) (game.Action, bool) {
	for _, kind := range kinds {
		if options.Legal(kind) {
			return game.Action{Kind: kind, Amount: options.Get(kind).Amount}, true
		}
	}
	return game.Action{}, false
}
