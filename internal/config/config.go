// Package config loads the HCL configuration for hold'em sessions.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdemsim/internal/bot"
)

// StrategyHuman marks a seat played from the console
const StrategyHuman = "human"

// Default values mirror the classic console game
const (
	DefaultMinPlayers    = 2
	DefaultMaxPlayers    = 6
	DefaultMinBet        = 10
	DefaultStartingChips = 100
	DefaultMaximumRounds = 10
	DefaultLogLevel      = "info"
	DefaultTables        = 100
	DefaultConcurrency   = 4
)

// Config represents the complete configuration
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	LogFile    string            `hcl:"log_file,optional"`
	Seed       int64             `hcl:"seed,optional"`
	Table      *TableConfig      `hcl:"table,block"`
	Players    []PlayerConfig    `hcl:"player,block"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
}

// TableConfig contains the betting structure and session length
type TableConfig struct {
	MinPlayers     int `hcl:"min_players,optional"`
	MaxPlayers     int `hcl:"max_players,optional"`
	MinBet         int `hcl:"min_bet,optional"`
	RaiseIncrement int `hcl:"raise_increment,optional"`
	StartingChips  int `hcl:"starting_chips,optional"`
	MaximumRounds  int `hcl:"maximum_rounds,optional"`
}

// PlayerConfig defines one seat
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Chips    int    `hcl:"chips,optional"`
}

// SimulationConfig controls headless batch runs
type SimulationConfig struct {
	Tables      int `hcl:"tables,optional"`
	Concurrency int `hcl:"concurrency,optional"`
}

// DefaultConfig returns the default six-handed table with one human seat
func DefaultConfig() *Config {
	cfg := &Config{
		Players: []PlayerConfig{
			{Name: "Phill", Strategy: string(bot.StrategyCall)},
			{Name: "Doyle", Strategy: string(bot.StrategyManiac)},
			{Name: "Daniel", Strategy: string(bot.StrategyRandom)},
			{Name: "Chris", Strategy: string(bot.StrategyCall)},
			{Name: "Johnny", Strategy: string(bot.StrategyRandom)},
			{Name: "You", Strategy: StrategyHuman},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes configuration from HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var cfg Config
	diags := gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(cfg.Players) == 0 {
		cfg.Players = DefaultConfig().Players
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills in every value left unset
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Table == nil {
		c.Table = &TableConfig{}
	}
	if c.Table.MinPlayers == 0 {
		c.Table.MinPlayers = DefaultMinPlayers
	}
	if c.Table.MaxPlayers == 0 {
		c.Table.MaxPlayers = DefaultMaxPlayers
	}
	if c.Table.MinBet == 0 {
		c.Table.MinBet = DefaultMinBet
	}
	if c.Table.RaiseIncrement == 0 {
		c.Table.RaiseIncrement = c.Table.MinBet
	}
	if c.Table.StartingChips == 0 {
		c.Table.StartingChips = DefaultStartingChips
	}
	if c.Table.MaximumRounds == 0 {
		c.Table.MaximumRounds = DefaultMaximumRounds
	}

	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = string(bot.StrategyCall)
		}
		c.Players[i].Strategy = strings.ToLower(c.Players[i].Strategy)
		if c.Players[i].Chips == 0 {
			c.Players[i].Chips = c.Table.StartingChips
		}
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Tables == 0 {
		c.Simulation.Tables = DefaultTables
	}
	if c.Simulation.Concurrency == 0 {
		c.Simulation.Concurrency = DefaultConcurrency
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	t := c.Table
	if t.MinPlayers < 2 {
		return fmt.Errorf("min players must be at least 2, got %d", t.MinPlayers)
	}
	if t.MaxPlayers < t.MinPlayers || t.MaxPlayers > 10 {
		return fmt.Errorf("max players must be between %d and 10, got %d", t.MinPlayers, t.MaxPlayers)
	}
	if t.MinBet < 2 {
		return fmt.Errorf("min bet must be at least 2, got %d", t.MinBet)
	}
	if t.RaiseIncrement < 0 {
		return fmt.Errorf("raise increment must not be negative, got %d", t.RaiseIncrement)
	}
	if t.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", t.StartingChips)
	}
	if t.MaximumRounds <= 0 {
		return fmt.Errorf("maximum rounds must be positive, got %d", t.MaximumRounds)
	}

	if len(c.Players) < t.MinPlayers || len(c.Players) > t.MaxPlayers {
		return fmt.Errorf("need between %d and %d players, got %d", t.MinPlayers, t.MaxPlayers, len(c.Players))
	}

	seen := make(map[string]bool)
	humans := 0
	for _, p := range c.Players {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("player name must not be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Strategy == StrategyHuman {
			humans++
		} else if _, err := bot.ParseStrategy(p.Strategy); err != nil {
			return fmt.Errorf("player %s: %w", p.Name, err)
		}
		if p.Chips <= 0 {
			return fmt.Errorf("player %s: chips must be positive", p.Name)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human player is supported, got %d", humans)
	}

	if c.Simulation.Tables <= 0 {
		return fmt.Errorf("simulation tables must be positive, got %d", c.Simulation.Tables)
	}
	if c.Simulation.Concurrency <= 0 {
		return fmt.Errorf("simulation concurrency must be positive, got %d", c.Simulation.Concurrency)
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// HasHuman reports whether a seat is played from the console
func (c *Config) HasHuman() bool {
	for _, p := range c.Players {
		if p.Strategy == StrategyHuman {
			return true
		}
	}
	return false
}
