package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/holdemsim/internal/game"
)

// Renderer prints hand events as they happen. It implements game.Observer.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

// HandEvent implements game.Observer
func (r *Renderer) HandEvent(e game.Event) {
	switch ev := e.(type) {
	case game.HandStartEvent:
		r.handStart(ev)
	case game.StageChangeEvent:
		r.printf("\n%s  %s   %s\n",
			r.styles.Stage.Render("--- "+ev.Stage.String()+" ---"),
			r.styles.Cards(ev.CommunityCards),
			r.styles.Info.Render(fmt.Sprintf("pot %d", ev.Pot)))
	case game.PlayerActionEvent:
		r.printf("%s %s %s\n",
			r.styles.Action.Render(ev.Player.Name),
			ev.Action.Kind.LogMessage(ev.Action.Amount),
			r.styles.Info.Render(fmt.Sprintf("(pot %d, chips %d)", ev.Pot, ev.Player.Chips)))
	case game.HandEndEvent:
		r.handEnd(ev)
	}
}

func (r *Renderer) handStart(ev game.HandStartEvent) {
	r.printf("\n%s\n", r.styles.Header.Render(fmt.Sprintf("Hand #%d", ev.HandNumber)))
	r.printf("%s\n", r.PlayerTable(ev.Players))

	sb := ev.Players[ev.Positions.SmallBlind]
	bb := ev.Players[ev.Positions.BigBlind]
	r.printf("%s posts small blind %d, %s posts big blind %d\n",
		sb.Name, ev.SmallBlind, bb.Name, ev.BigBlind)
}

func (r *Renderer) handEnd(ev game.HandEndEvent) {
	res := ev.Result
	if res.Showdown {
		r.printf("\n%s  %s\n", r.styles.Stage.Render("--- Showdown ---"), r.styles.Cards(res.Community))
		for _, p := range ev.Players {
			if cards, ok := res.ShownCards[p.ID]; ok {
				r.printf("  %-10s %s\n", p.Name, r.styles.Cards(cards))
			}
		}
	}

	how := "everybody else folded"
	if res.Showdown {
		how = "at showdown"
	}
	r.printf("%s\n", r.styles.Success.Render(
		fmt.Sprintf("%s wins %d chips %s", res.Winner.Name, res.Pot, how)))
}

// PlayerTable renders the seats with their chips, blind role and status
func (r *Renderer) PlayerTable(players []game.PlayerState) string {
	rows := make([][]string, 0, len(players))
	for i, p := range players {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.Chips),
			roleLabel(p.Role),
			status(p),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Info).
		Headers("#", "Name", "Chips", "Blind", "Status").
		Rows(rows...).
		String()
}

// Standings prints the players ordered by chips
func (r *Renderer) Standings(standings []*game.Player) {
	r.printf("\n%s\n", r.styles.Header.Render("Standings"))
	for i, p := range standings {
		line := fmt.Sprintf("%d. %-10s %6d", i+1, p.Name, p.Chips)
		if !p.Active {
			line += r.styles.Info.Render("  (out)")
		}
		r.printf("%s\n", line)
	}
}

// Winners announces the session winner, or the players sharing first place
func (r *Renderer) Winners(winners []*game.Player) {
	switch len(winners) {
	case 0:
		r.printf("%s\n", r.styles.Warning.Render("Nobody won the game"))
	case 1:
		r.printf("%s\n", r.styles.Success.Render(
			fmt.Sprintf("%s wins the game with %d chips!", winners[0].Name, winners[0].Chips)))
	default:
		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = w.Name
		}
		r.printf("%s\n", r.styles.Success.Render(
			fmt.Sprintf("It's a tie between %s with %d chips each!", strings.Join(names, ", "), winners[0].Chips)))
	}
}

// Retired announces players who ran out of chips
func (r *Renderer) Retired(players []*game.Player) {
	for _, p := range players {
		r.printf("%s\n", r.styles.Warning.Render(p.Name+" is out of chips and leaves the table"))
	}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func roleLabel(role game.Role) string {
	switch role {
	case game.Dealer:
		return "D"
	case game.SmallBlind:
		return "SB"
	case game.BigBlind:
		return "BB"
	default:
		return ""
	}
}

func status(p game.PlayerState) string {
	switch {
	case !p.Active:
		return "Out"
	case p.Folded:
		return "Folded"
	case p.AllIn:
		return "All in"
	default:
		return "Active"
	}
}
