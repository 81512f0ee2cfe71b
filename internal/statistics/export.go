package statistics

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Report is the serialisable form of a simulation run
type Report struct {
	Seed       int64            `yaml:"seed"`
	Tables     int              `yaml:"tables"`
	Hands      int              `yaml:"hands"`
	Showdowns  int              `yaml:"showdowns"`
	FoldWins   int              `yaml:"fold_wins"`
	AveragePot float64          `yaml:"average_pot"`
	LargestPot int              `yaml:"largest_pot"`
	Strategies []StrategyReport `yaml:"strategies"`
}

// StrategyReport summarises one strategy
type StrategyReport struct {
	Name   string    `yaml:"name"`
	Seats  int       `yaml:"seats"`
	Wins   int       `yaml:"wins"`
	Busts  int       `yaml:"busts"`
	Net    int       `yaml:"net"`
	Mean   float64   `yaml:"mean"`
	StdDev float64   `yaml:"std_dev"`
	CI95   []float64 `yaml:"ci95,flow"`
}

// Report builds the serialisable summary, strategies sorted by name
func (s *Statistics) Report(seed int64) Report {
	r := Report{
		Seed:       seed,
		Tables:     s.Tables,
		Hands:      s.Hands,
		Showdowns:  s.Showdowns,
		FoldWins:   s.FoldWins,
		AveragePot: s.AveragePot(),
		LargestPot: s.MaxPot,
	}
	for _, name := range s.StrategyNames() {
		st := s.Strategies[name]
		lo, hi := st.ConfidenceInterval95()
		r.Strategies = append(r.Strategies, StrategyReport{
			Name:   name,
			Seats:  st.Seats,
			Wins:   st.Wins,
			Busts:  st.Busts,
			Net:    st.NetSum,
			Mean:   st.Mean(),
			StdDev: st.StdDev(),
			CI95:   []float64{lo, hi},
		})
	}
	return r
}

// WriteYAML encodes the report for seed to w
func (s *Statistics) WriteYAML(w io.Writer, seed int64) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.Report(seed)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
