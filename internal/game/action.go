package game

import (
	"fmt"
	"strings"
)

// ActionKind represents a betting decision
type ActionKind int

const (
	Fold ActionKind = iota
	Check
	Call
	Raise
	AllIn
	Bet

	actionKindCount
)

// String returns the string representation of an action kind
func (a ActionKind) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "allin"
	case Bet:
		return "bet"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the known action kinds
func (a ActionKind) Valid() bool {
	return a >= Fold && a < actionKindCount
}

// Description returns the menu text shown to a human player
func (a ActionKind) Description() string {
	switch a {
	case Fold:
		return "Fold your hand"
	case Check:
		return "Check and pass"
	case Call:
		return "Call the current bet"
	case Raise:
		return "Raise the stakes"
	case AllIn:
		return "Go all in"
	case Bet:
		return "Place a bet"
	default:
		return "Unknown action"
	}
}

// LogMessage returns a past tense description used in action logs
func (a ActionKind) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folds"
	case Check:
		return "checks"
	case Call:
		return fmt.Sprintf("calls to %d", amount)
	case Raise:
		return fmt.Sprintf("raises to %d", amount)
	case AllIn:
		return fmt.Sprintf("goes all in for %d", amount)
	case Bet:
		return fmt.Sprintf("bets %d", amount)
	default:
		return "does something unexpected"
	}
}

// ParseActionKind converts a string to an action kind
func ParseActionKind(s string) (ActionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fold", "f":
		return Fold, nil
	case "check", "k":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "raise", "r":
		return Raise, nil
	case "allin", "all-in", "all_in", "a":
		return AllIn, nil
	case "bet", "b":
		return Bet, nil
	default:
		return Fold, fmt.Errorf("unknown action %q", s)
	}
}

// Action is one player decision. For call, raise and bet the amount is the
// stage total the player's bet reaches; for all in it is the whole stack.
type Action struct {
	Kind   ActionKind
	Amount int
	Round  int
}

// String returns a short description of the action
func (a Action) String() string {
	switch a.Kind {
	case Fold, Check:
		return a.Kind.String()
	default:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	}
}

// Option describes whether an action kind is legal and its default amount
type Option struct {
	Legal  bool
	Amount int
}

// Options is the legal action map for one decision, indexed by kind
type Options [actionKindCount]Option

// Legal reports whether kind may be chosen
func (o Options) Legal(kind ActionKind) bool {
	return kind.Valid() && o[kind].Legal
}

// Get returns the option for kind
func (o Options) Get(kind ActionKind) Option {
	if !kind.Valid() {
		return Option{}
	}
	return o[kind]
}

// Available returns the legal kinds in menu order
func (o Options) Available() []ActionKind {
	kinds := make([]ActionKind, 0, len(o))
	for kind := Fold; kind < actionKindCount; kind++ {
		if o[kind].Legal {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
