package statistics

import (
	"fmt"
	"math"
	"sort"
)

// SeatResult is the outcome of one seat over a whole session
type SeatResult struct {
	Name     string
	Strategy string
	Start    int
	Final    int
	Winner   bool // Finished with the most chips (ties count for everyone)
}

// Net returns the chips won or lost by the seat
func (r SeatResult) Net() int {
	return r.Final - r.Start
}

// TableResult represents the outcome of one simulated session
type TableResult struct {
	Seed      int64
	Hands     int
	Showdowns int
	Pots      []int
	Seats     []SeatResult
}

// StrategyStats tracks results for every seat played by one strategy
type StrategyStats struct {
	Seats   int
	Wins    int
	Busts   int
	NetSum  int
	SumNet2 float64 // Sum of squares for variance calculation
}

// Mean returns the average chips won per seat
func (s *StrategyStats) Mean() float64 {
	if s.Seats == 0 {
		return 0
	}
	return float64(s.NetSum) / float64(s.Seats)
}

// Variance returns the sample variance of the per-seat results
func (s *StrategyStats) Variance() float64 {
	if s.Seats < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Seats)*mean*mean) / float64(s.Seats-1)
}

// StdDev returns the sample standard deviation of the per-seat results
func (s *StrategyStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *StrategyStats) ConfidenceInterval95() (float64, float64) {
	if s.Seats == 0 {
		return 0, 0
	}
	mean := s.Mean()
	margin := 1.96 * s.StdDev() / math.Sqrt(float64(s.Seats))
	return mean - margin, mean + margin
}

// Statistics aggregates the results of many simulated tables
type Statistics struct {
	Tables     int
	Hands      int
	Showdowns  int
	FoldWins   int
	TotalPot   int
	MaxPot     int
	Strategies map[string]*StrategyStats
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{Strategies: make(map[string]*StrategyStats)}
}

// Add incorporates a table result into the statistics
func (s *Statistics) Add(result TableResult) {
	s.Tables++
	s.Hands += result.Hands
	s.Showdowns += result.Showdowns
	s.FoldWins += result.Hands - result.Showdowns

	for _, pot := range result.Pots {
		s.TotalPot += pot
		if pot > s.MaxPot {
			s.MaxPot = pot
		}
	}

	for _, seat := range result.Seats {
		st, ok := s.Strategies[seat.Strategy]
		if !ok {
			st = &StrategyStats{}
			s.Strategies[seat.Strategy] = st
		}
		net := seat.Net()
		st.Seats++
		st.NetSum += net
		st.SumNet2 += float64(net) * float64(net)
		if seat.Winner {
			st.Wins++
		}
		if seat.Final == 0 {
			st.Busts++
		}
	}
}

// AveragePot returns the mean pot size across all hands
func (s *Statistics) AveragePot() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.TotalPot) / float64(s.Hands)
}

// ShowdownRate returns the fraction of hands that reached showdown
func (s *Statistics) ShowdownRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Showdowns) / float64(s.Hands)
}

// StrategyNames returns the strategies seen, sorted by name
func (s *Statistics) StrategyNames() []string {
	names := make([]string, 0, len(s.Strategies))
	for name := range s.Strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLedgerBalanced checks that every chip won was lost by someone else
func (s *Statistics) IsLedgerBalanced() bool {
	total := 0
	for _, st := range s.Strategies {
		total += st.NetSum
	}
	return total == 0
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Tables <= 0 {
		return fmt.Errorf("invalid tables count: %d", s.Tables)
	}
	if s.Showdowns+s.FoldWins != s.Hands {
		return fmt.Errorf("showdowns (%d) and fold wins (%d) do not add up to hands (%d)",
			s.Showdowns, s.FoldWins, s.Hands)
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: chips were created or destroyed")
	}
	return nil
}
