package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmpty is returned when a card is requested from an exhausted deck
var ErrEmpty = errors.New("no cards left in the deck")

// Source supplies cards to a hand. *Deck is the standard implementation.
type Source interface {
	Deal() (Card, error)
	Burn() error
	Peek() (Card, error)
	Size() int
}

// Deck represents a deck of playing cards. Cards are dealt from the top
// (index 0).
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a standard 52-card deck shuffled with rng
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStacked creates a deck that deals the given cards in order. No
// shuffling happens, which makes it useful for deterministic tests.
func NewStacked(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked}
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards. A deck without an
// RNG (a stacked deck) is left untouched.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmpty
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrEmpty
	}

	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Burn discards the top card
func (d *Deck) Burn() error {
	_, err := d.Deal()
	return err
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmpty
	}
	return d.cards[0], nil
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}
