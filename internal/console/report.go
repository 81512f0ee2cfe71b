package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/holdemsim/internal/statistics"
)

// PrintReport writes a summary of a simulation run
func PrintReport(out io.Writer, styles Styles, seed int64, stats *statistics.Statistics) {
	fmt.Fprintf(out, "%s\n\n", styles.Header.Render("Simulation results"))
	fmt.Fprintf(out, "Seed:        %d\n", seed)
	fmt.Fprintf(out, "Tables:      %d\n", stats.Tables)
	fmt.Fprintf(out, "Hands:       %d\n", stats.Hands)
	fmt.Fprintf(out, "Showdowns:   %d (%.1f%%)\n", stats.Showdowns, stats.ShowdownRate()*100)
	fmt.Fprintf(out, "Fold wins:   %d\n", stats.FoldWins)
	fmt.Fprintf(out, "Average pot: %.1f\n", stats.AveragePot())
	fmt.Fprintf(out, "Largest pot: %d\n\n", stats.MaxPot)

	rows := make([][]string, 0, len(stats.Strategies))
	for _, name := range stats.StrategyNames() {
		st := stats.Strategies[name]
		lo, hi := st.ConfidenceInterval95()
		rows = append(rows, []string{
			name,
			strconv.Itoa(st.Seats),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Busts),
			fmt.Sprintf("%+.1f", st.Mean()),
			fmt.Sprintf("[%+.1f, %+.1f]", lo, hi),
		})
	}

	fmt.Fprintln(out, table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Info).
		Headers("Strategy", "Seats", "Wins", "Busts", "Net/seat", "95% CI").
		Rows(rows...).
		String())
}
