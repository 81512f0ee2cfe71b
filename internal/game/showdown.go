package game

import (
	"fmt"

	"github.com/lox/holdemsim/internal/deck"
)

// HandRanker picks the single winner among the players still in the hand
type HandRanker interface {
	DetermineWinner(players []*Player, community []deck.Card) (*Player, error)
}

// HighCardRanker awards the pot to the player holding the highest single
// rank among their hole cards and the board. Ties go to the earliest seat.
type HighCardRanker struct{}

// DetermineWinner implements HandRanker
func (HighCardRanker) DetermineWinner(players []*Player, community []deck.Card) (*Player, error) {
	var (
		winner *Player
		best   deck.Rank
	)

	for _, p := range players {
		if !p.InHand() {
			continue
		}
		high := highestRank(p.HoleCards, community)
		if winner == nil || high > best {
			winner = p
			best = high
		}
	}

	if winner == nil {
		return nil, fmt.Errorf("%w: nobody reached showdown", ErrNoContender)
	}
	return winner, nil
}

func highestRank(hole, community []deck.Card) deck.Rank {
	var high deck.Rank
	for _, c := range hole {
		if c.Rank > high {
			high = c.Rank
		}
	}
	for _, c := range community {
		if c.Rank > high {
			high = c.Rank
		}
	}
	return high
}

// RankerFunc adapts a function to the HandRanker interface
type RankerFunc func(players []*Player, community []deck.Card) (*Player, error)

// DetermineWinner calls f
func (f RankerFunc) DetermineWinner(players []*Player, community []deck.Card) (*Player, error) {
	return f(players, community)
}
