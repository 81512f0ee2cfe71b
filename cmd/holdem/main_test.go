package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
log_level = "warn"
seed      = 7

table {
  min_bet        = 20
  maximum_rounds = 5
}

player "Phill" {
  strategy = "call"
}

player "You" {
  strategy = "human"
  chips    = 250
}
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	g := &Globals{Config: writeConfig(t), Seed: 99, LogLevel: "debug"}

	cfg, err := g.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 20, cfg.Table.MinBet)
	assert.Equal(t, 250, cfg.Players[1].Chips)

	g = &Globals{Config: writeConfig(t), LogLevel: "loud"}
	_, err = g.loadConfig()
	assert.ErrorContains(t, err, "invalid config")
}

func TestSimulateSeatsReplaceHuman(t *testing.T) {
	cfg, err := (&Globals{Config: writeConfig(t)}).loadConfig()
	require.NoError(t, err)

	seats, err := (&SimulateCmd{HumanAs: "maniac"}).seats(cfg)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, bot.StrategyCall, seats[0].Strategy)
	assert.Equal(t, bot.StrategyManiac, seats[1].Strategy)
	assert.Equal(t, "You", seats[1].Name)

	_, err = (&SimulateCmd{HumanAs: "nope"}).seats(cfg)
	assert.Error(t, err)
}

func TestSeatPlayersUsesHumanProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	human := game.ProviderFunc(func(game.TableState, game.Options) game.Action {
		return game.Action{Kind: game.Check}
	})

	roster, providers, err := seatPlayers(cfg, 1, human, log.New(io.Discard))
	require.NoError(t, err)
	require.Equal(t, len(cfg.Players), roster.Len())

	for i, p := range roster.Players() {
		assert.Equal(t, cfg.Players[i].Name, p.Name)
		assert.NotNil(t, providers.Get(p.ID), p.Name)
	}

	you := roster.Players()[len(cfg.Players)-1]
	action := providers.Get(you.ID).ChooseAction(game.TableState{}, game.Options{})
	assert.Equal(t, game.Check, action.Kind)
}
