package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"holdem.hcl" env:"HOLDEM_CONFIG" help:"Path to HCL configuration file"`
	Seed     int64  `env:"HOLDEM_SEED" help:"Seed for deterministic play (overrides config, 0 for random)"`
	LogLevel string `env:"HOLDEM_LOG_LEVEL" help:"Log level (debug|info|warn|error), overrides config"`
	LogFile  string `env:"HOLDEM_LOG_FILE" help:"Write logs to this file instead of stderr"`
	NoColor  bool   `env:"HOLDEM_NO_COLOR" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a session at the console"`
	Simulate SimulateCmd      `cmd:"" help:"Run many bot-only tables and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em betting simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the configuration file and applies flag overrides
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.LogFile = g.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogger creates the root logger. The returned function closes the log
// file, if one was opened.
func setupLogger(cfg *config.Config, minLevel log.Level) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		w = f
		closer = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	level := cfg.Level()
	if cfg.LogFile == "" && level < minLevel {
		level = minLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return logger, closer, nil
}
