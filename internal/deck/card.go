package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the long name of the suit, e.g. "Spades"
func (s Suit) Name() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return "Unknown"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Values match the pip count, aces are high.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{
	"Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

const rankSymbols = "23456789TJQKA"

// String returns the single character symbol for a rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankSymbols[r-Two : r-Two+1]
}

// Name returns the long name of the rank, e.g. "Queen"
func (r Rank) Name() string {
	if r < Two || r > Ace {
		return "Unknown"
	}
	return rankNames[r-Two]
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the short form of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form of a card (e.g., "Ace of Spades")
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two character card such as "As" or "th"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: expected 2 characters", s)
	}

	idx := strings.IndexByte(rankSymbols, strings.ToUpper(s[:1])[0])
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	var suit Suit
	switch strings.ToLower(s[1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(suit, Two+Rank(idx)), nil
}

// ParseCards parses a run of concatenated cards such as "AsKhQd"
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
