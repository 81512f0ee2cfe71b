package game

import (
	"fmt"

	"github.com/lox/holdemsim/internal/deck"
)

// Role is the blind role a player holds for the current hand
type Role int

const (
	NotBlind Role = iota
	Dealer
	SmallBlind
	BigBlind
)

// String returns the string representation of a role
func (r Role) String() string {
	switch r {
	case Dealer:
		return "Dealer"
	case SmallBlind:
		return "SmallBlind"
	case BigBlind:
		return "BigBlind"
	default:
		return "None"
	}
}

// Player is a seat's chip account. The roster owns players; hands borrow them.
type Player struct {
	ID        int
	Name      string
	Chips     int
	Bet       int // Chips committed in the current stage
	TotalBet  int // Chips committed in the current hand
	Folded    bool
	Active    bool // False once the player is out of the game
	Role      Role
	HoleCards []deck.Card
}

// NewPlayer creates an active player
func NewPlayer(id int, name string, chips int) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		Chips:  chips,
		Active: true,
	}
}

// InHand returns true if the player is still contesting the pot
func (p *Player) InHand() bool {
	return p.Active && !p.Folded
}

// CanAct returns true if the player is in the hand and has chips to play
func (p *Player) CanAct() bool {
	return p.InHand() && p.Chips > 0
}

// IsAllIn returns true if the player has committed their whole stack
func (p *Player) IsAllIn() bool {
	return p.InHand() && p.Chips == 0 && p.TotalBet > 0
}

// Commit moves amount chips from the stack into the current bet
func (p *Player) Commit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	if amount > p.Chips {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientChips, p.Name, p.Chips, amount)
	}

	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	return nil
}

// RaiseTo raises the player's stage bet to total and returns the chips moved
func (p *Player) RaiseTo(total int) (int, error) {
	diff := total - p.Bet
	if err := p.Commit(diff); err != nil {
		return 0, err
	}
	return diff, nil
}

// CallTo matches the stage bet total and returns the chips moved
func (p *Player) CallTo(total int) (int, error) {
	return p.RaiseTo(total)
}

// Fold gives up the hand
func (p *Player) Fold() {
	p.Folded = true
}

// AddChips credits the player's stack
func (p *Player) AddChips(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: can't add %d chips", ErrNegativeAmount, amount)
	}
	p.Chips += amount
	return nil
}

// ReceiveCard adds a hole card
func (p *Player) ReceiveCard(c deck.Card) {
	p.HoleCards = append(p.HoleCards, c)
}

// ResetForStage clears the per-stage commitment
func (p *Player) ResetForStage() {
	p.Bet = 0
}

// ResetForHand clears everything that only lives for one hand
func (p *Player) ResetForHand() {
	p.Bet = 0
	p.TotalBet = 0
	p.Folded = false
	p.Role = NotBlind
	p.HoleCards = nil
}

// String returns a short description of the player
func (p *Player) String() string {
	return fmt.Sprintf("%s (#%d, %d chips)", p.Name, p.ID, p.Chips)
}
