package game

// BettingRound tracks turn order and betting for one stage of a hand.
//
// The round closes when action comes back to the aggressor (ActionTaker) or,
// when nobody has bet, back to the player left of the dealer. Two one-shot
// flags patch the edges of that rule: the free pass keeps the round open for
// one more turn when the left-of-dealer player folds, and the kill switch
// closes the round right after the big blind uses its preflop option.
type BettingRound struct {
	Stage          Stage
	HighestBet     int
	Opened         bool
	ActionTaker    int // Seat of the last aggressor, -1 if none
	LastTurnPlayer int
	LeftOfDealer   int

	dealer         int
	bigBlind       int
	firstTurn      bool
	freePass       bool
	bigBlindOption bool
	killSwitch     bool
}

// NewBettingRound creates a preflop round for the given positions
func NewBettingRound(pos Positions) *BettingRound {
	br := &BettingRound{
		dealer:   pos.Dealer,
		bigBlind: pos.BigBlind,
	}
	br.ResetForStage(PreFlop)
	return br
}

// ResetForStage clears the round for a new stage. Turn order starts left of
// the dealer.
func (br *BettingRound) ResetForStage(stage Stage) {
	br.Stage = stage
	br.HighestBet = 0
	br.Opened = false
	br.ActionTaker = -1
	br.LastTurnPlayer = br.dealer
	br.LeftOfDealer = -1
	br.firstTurn = true
	br.freePass = false
	br.bigBlindOption = false
	br.killSwitch = false
}

// OpenWithBlinds marks the preflop round as opened by the posted blinds.
// Action starts after the big blind, who keeps the option to act once more.
func (br *BettingRound) OpenWithBlinds(highest int) {
	br.HighestBet = highest
	br.Opened = true
	br.ActionTaker = br.bigBlind
	br.LastTurnPlayer = br.bigBlind
	br.bigBlindOption = true
}

// LegalActions computes the options available to p
func (br *BettingRound) LegalActions(p *Player, minBet, raiseIncrement int) Options {
	var opts Options

	opts[Fold] = Option{Legal: true}
	opts[AllIn] = Option{Legal: true, Amount: p.Chips}

	if !br.Opened {
		opts[Check] = Option{Legal: true}
		opts[Bet] = Option{Legal: p.Chips >= minBet-p.Bet, Amount: minBet}
		return opts
	}

	opts[Call] = Option{Legal: p.Chips >= br.HighestBet-p.Bet, Amount: br.HighestBet}
	raiseTo := br.HighestBet + raiseIncrement
	opts[Raise] = Option{Legal: p.Chips >= raiseTo-p.Bet, Amount: raiseTo}
	return opts
}

// Next returns the seat that acts next, or -1 when the round is closed
func (br *BettingRound) Next(players []*Player) int {
	if br.killSwitch {
		br.killSwitch = false
		return -1
	}

	candidate := nextInHand(players, br.LastTurnPlayer)
	if candidate < 0 {
		return -1
	}
	br.LeftOfDealer = nextInHand(players, br.dealer)

	if br.ActionTaker == -1 {
		if candidate == br.LeftOfDealer && !br.firstTurn {
			if !br.freePass {
				return -1
			}
			br.freePass = false
		}
		return candidate
	}

	if candidate == br.ActionTaker {
		if br.Stage == PreFlop && br.bigBlindOption && candidate == br.bigBlind {
			br.bigBlindOption = false
			br.killSwitch = true
			return candidate
		}
		return -1
	}
	return candidate
}

// RecordTurn notes that seat has taken its turn
func (br *BettingRound) RecordTurn(seat int) {
	br.LastTurnPlayer = seat
	br.firstTurn = false
}

// OnFold updates the left-of-dealer reference after seat folds
func (br *BettingRound) OnFold(players []*Player, seat int) {
	if seat != br.LeftOfDealer {
		return
	}
	br.LeftOfDealer = nextInHand(players, br.dealer)
	br.freePass = true
}

// OnAggression makes seat the new aggressor with a stage total of total
func (br *BettingRound) OnAggression(seat, total int) {
	br.HighestBet = total
	br.Opened = true
	br.ActionTaker = seat
	br.killSwitch = false
	br.bigBlindOption = false
}

// nextInHand returns the nearest seat after seat, wrapping, whose player is
// still in the hand. Returns -1 if nobody is.
func nextInHand(players []*Player, seat int) int {
	n := len(players)
	if n == 0 {
		return -1
	}
	for offset := 1; offset <= n; offset++ {
		idx := ((seat+offset)%n + n) % n
		if players[idx].InHand() {
			return idx
		}
	}
	return -1
}
