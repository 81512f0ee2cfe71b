package game

import "fmt"

// Pot tracks every chip committed during a hand and who committed it.
// Contributions are only cleared when a new pot is created for the next hand.
type Pot struct {
	Total         int
	contributions map[int]int
}

// NewPot creates an empty pot
func NewPot() *Pot {
	return &Pot{contributions: make(map[int]int)}
}

// Add records amount chips from the player with the given ID
func (p *Pot) Add(playerID, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: pot contribution %d", ErrNegativeAmount, amount)
	}
	p.Total += amount
	p.contributions[playerID] += amount
	return nil
}

// Contribution returns the chips the player has put in this hand
func (p *Pot) Contribution(playerID int) int {
	return p.contributions[playerID]
}

// Contributions returns a copy of the contribution ledger keyed by player ID
func (p *Pot) Contributions() map[int]int {
	out := make(map[int]int, len(p.contributions))
	for id, amount := range p.contributions {
		out[id] = amount
	}
	return out
}

// Award pays the whole pot to winner and empties it
func (p *Pot) Award(winner *Player) (int, error) {
	amount := p.Total
	if err := winner.AddChips(amount); err != nil {
		return 0, err
	}
	p.Total = 0
	return amount, nil
}
