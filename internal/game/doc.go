// Package game implements the betting core of a Texas Hold'em hand.
//
// A Roster owns the players of a session and rotates the dealer and blind
// positions between hands. Each deal creates a Hand that borrows those
// players, posts the blinds, runs the preflop, flop, turn and river betting
// rounds and settles the single pot.
//
// # Basic Usage
//
//	roster := game.NewRoster(nil)
//	roster.Add("Alice", 100)
//	roster.Add("Bob", 100)
//	roster.Add("Charlie", 100)
//	pos, _ := roster.AssignPositions()
//
//	h, err := game.NewHand(game.HandConfig{
//	    Number:    1,
//	    Players:   roster.Players(),
//	    Positions: pos,
//	    MinBet:    10,
//	    Cards:     deck.New(randutil.New(42)),
//	    Provider:  provider,
//	})
//	result, err := h.Play()
//
// # Turn Order
//
// BettingRound decides who acts next. Action moves clockwise over players
// still in the hand and the round closes when it reaches the last aggressor
// again, or the first player left of the dealer when nobody has bet. The big
// blind gets one extra turn preflop when everybody just called.
//
// # Deterministic Testing
//
// Use deck.NewStacked for a fixed card order and a ProviderFunc that replays
// scripted actions:
//
//	script := []game.Action{{Kind: game.Call}, {Kind: game.Fold}}
//	provider := game.ProviderFunc(func(game.TableState, game.Options) game.Action {
//	    a := script[0]
//	    script = script[1:]
//	    return a
//	})
//
// Providers are never trusted: an illegal choice is logged and replaced by a
// fold, and chip conservation is verified before the pot is awarded.
package game
