package game

import (
	"fmt"
	"sort"
)

// IDAllocator hands out monotonically increasing player IDs
type IDAllocator struct {
	next int
}

// NewIDAllocator creates an allocator whose first ID is start
func NewIDAllocator(start int) *IDAllocator {
	return &IDAllocator{next: start}
}

// Next returns the next unused ID
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Positions holds the seat indices of the dealer and blinds for one hand
type Positions struct {
	Dealer     int
	SmallBlind int
	BigBlind   int
}

// Roster owns the players of a session, indexed by seat. Hands borrow the
// players for their lifetime; only the roster adds or retires them.
type Roster struct {
	ids       *IDAllocator
	players   []*Player
	positions Positions
	assigned  bool
}

// NewRoster creates an empty roster. A nil allocator starts IDs at 1.
func NewRoster(ids *IDAllocator) *Roster {
	if ids == nil {
		ids = NewIDAllocator(1)
	}
	return &Roster{ids: ids}
}

// Add seats a new player at the next free seat
func (r *Roster) Add(name string, chips int) *Player {
	p := NewPlayer(r.ids.Next(), name, chips)
	r.players = append(r.players, p)
	return p
}

// Players returns the seated players in seat order
func (r *Roster) Players() []*Player {
	return r.players
}

// Len returns the number of seats
func (r *Roster) Len() int {
	return len(r.players)
}

// Seat returns the seat index of the player with the given ID, or -1
func (r *Roster) Seat(id int) int {
	for i, p := range r.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ActiveCount returns the number of players still in the game
func (r *Roster) ActiveCount() int {
	count := 0
	for _, p := range r.players {
		if p.Active {
			count++
		}
	}
	return count
}

// Positions returns the current dealer and blind seats
func (r *Roster) Positions() Positions {
	return r.positions
}

// AssignPositions seats the first dealer at the first active seat and the
// blinds after it
func (r *Roster) AssignPositions() (Positions, error) {
	return r.place(0)
}

// Rotate moves the dealer button to the next active seat and recomputes the
// blinds. The first call behaves like AssignPositions.
func (r *Roster) Rotate() (Positions, error) {
	if !r.assigned {
		return r.AssignPositions()
	}
	return r.place(r.positions.Dealer + 1)
}

func (r *Roster) place(start int) (Positions, error) {
	if r.ActiveCount() < 2 {
		return Positions{}, fmt.Errorf("%w: %d active", ErrTooFewPlayers, r.ActiveCount())
	}

	for _, p := range r.players {
		p.Role = NotBlind
	}

	n := len(r.players)
	dealer := r.nextActive(((start%n)+n)%n - 1)
	var pos Positions
	pos.Dealer = dealer

	if r.ActiveCount() == 2 {
		// Heads-up: the dealer posts the small blind
		pos.SmallBlind = dealer
		pos.BigBlind = r.nextActive(dealer)
		r.players[dealer].Role = SmallBlind
	} else {
		pos.SmallBlind = r.nextActive(dealer)
		pos.BigBlind = r.nextActive(pos.SmallBlind)
		r.players[dealer].Role = Dealer
		r.players[pos.SmallBlind].Role = SmallBlind
	}
	r.players[pos.BigBlind].Role = BigBlind

	r.positions = pos
	r.assigned = true
	return pos, nil
}

// nextActive returns the first active seat after seat, wrapping around
func (r *Roster) nextActive(seat int) int {
	n := len(r.players)
	for offset := 1; offset <= n; offset++ {
		idx := (seat + offset + n) % n
		if r.players[idx].Active {
			return idx
		}
	}
	return -1
}

// RetireBusted marks every player without chips as permanently inactive and
// returns the newly retired players
func (r *Roster) RetireBusted() []*Player {
	var retired []*Player
	for _, p := range r.players {
		if p.Active && p.Chips == 0 {
			p.Active = false
			p.Role = NotBlind
			retired = append(retired, p)
		}
	}
	return retired
}

// Standings returns the players ordered by chips, richest first. Ties keep
// seat order.
func (r *Roster) Standings() []*Player {
	standings := make([]*Player, len(r.players))
	copy(standings, r.players)
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Chips > standings[j].Chips
	})
	return standings
}

// Leaders returns every player sharing the highest chip count
func (r *Roster) Leaders() []*Player {
	standings := r.Standings()
	if len(standings) == 0 {
		return nil
	}

	var leaders []*Player
	for _, p := range standings {
		if p.Chips != standings[0].Chips {
			break
		}
		leaders = append(leaders, p)
	}
	return leaders
}

// TotalChips returns the chips held by every seated player
func (r *Roster) TotalChips() int {
	total := 0
	for _, p := range r.players {
		total += p.Chips
	}
	return total
}
