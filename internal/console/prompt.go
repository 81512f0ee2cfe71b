package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/game"
)

// Prompter asks a human for decisions on a numbered menu. It implements
// game.ActionProvider.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
	logger *log.Logger
}

// NewPrompter creates a prompter reading from in and writing to out
func NewPrompter(in io.Reader, out io.Writer, styles Styles, logger *log.Logger) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		logger: logger.WithPrefix("console"),
	}
}

// ChooseAction implements game.ActionProvider. An unreadable or out of range
// choice folds the hand.
func (p *Prompter) ChooseAction(state game.TableState, options game.Options) game.Action {
	acting := state.Acting()

	fmt.Fprintf(p.out, "\n%s  %s\n", p.styles.Prompt.Render(acting.Name+", it's your turn"), p.styles.Cards(acting.HoleCards))
	fmt.Fprintf(p.out, "Board: %s  Pot: %d  To call: %d  Chips: %d\n",
		p.styles.Cards(state.CommunityCards), state.Pot, state.ToCall(), acting.Chips)

	kinds := options.Available()
	for i, kind := range kinds {
		fmt.Fprintf(p.out, "  %d) %s%s\n", i+1, kind.Description(), amountHint(kind, options.Get(kind).Amount))
	}
	fmt.Fprint(p.out, p.styles.Prompt.Render("Choose an action: "))

	line, err := p.readLine()
	choice, convErr := strconv.Atoi(line)
	if err != nil || convErr != nil || choice < 1 || choice > len(kinds) {
		p.logger.Debug("Invalid menu choice", "input", line, "error", err)
		fmt.Fprintln(p.out, p.styles.Warning.Render("Invalid choice, folding"))
		return game.Action{Kind: game.Fold}
	}

	kind := kinds[choice-1]
	amount := options.Get(kind).Amount
	if kind == game.Bet || kind == game.Raise {
		amount = p.promptAmount(amount, acting.Chips+acting.Bet)
	}
	return game.Action{Kind: kind, Amount: amount}
}

// promptAmount asks for a bet total until it is at least minAmount. An empty line
// or a closed input takes the minimum.
func (p *Prompter) promptAmount(minAmount, maxAmount int) int {
	for {
		fmt.Fprintf(p.out, "Amount (%d-%d, enter for %d): ", minAmount, maxAmount, minAmount)
		line, err := p.readLine()
		if line == "" {
			return minAmount
		}

		amount, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, p.styles.Warning.Render("Please enter a number"))
		case amount < minAmount:
			fmt.Fprintln(p.out, p.styles.Warning.Render(fmt.Sprintf("The amount must be at least %d", minAmount)))
		default:
			if amount > maxAmount {
				fmt.Fprintln(p.out, p.styles.Info.Render("That's more than you have, going all in"))
			}
			return amount
		}

		if err != nil {
			return minAmount
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line != "" {
		// Last line without a newline
		return line, nil
	}
	return line, err
}

func amountHint(kind game.ActionKind, amount int) string {
	switch kind {
	case game.Call, game.Raise, game.Bet:
		return fmt.Sprintf(" (to %d)", amount)
	case game.AllIn:
		return fmt.Sprintf(" (%d)", amount)
	default:
		return ""
	}
}
