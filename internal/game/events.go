package game

import (
	"time"

	"github.com/lox/holdemsim/internal/deck"
)

// EventType represents a hand event type with type safety
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStageChange  EventType = "stage_change"
	EventTypePlayerAction EventType = "player_action"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything that happens during a hand
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// Observer receives hand events as they happen. Observers run on the hand's
// goroutine and must not mutate the players they see.
type Observer interface {
	HandEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

// HandEvent calls f
func (f ObserverFunc) HandEvent(e Event) { f(e) }

// Observers fans an event out to several observers
type Observers []Observer

// HandEvent forwards e to every observer
func (o Observers) HandEvent(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.HandEvent(e)
		}
	}
}

// HandStartEvent is published after blinds are posted
type HandStartEvent struct {
	HandNumber int
	Players    []PlayerState
	Positions  Positions
	SmallBlind int
	BigBlind   int
	Pot        int
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// StageChangeEvent is published when a new stage's cards are revealed
type StageChangeEvent struct {
	HandNumber     int
	Stage          Stage
	CommunityCards []deck.Card
	Pot            int
	timestamp      time.Time
}

func (e StageChangeEvent) EventType() EventType { return EventTypeStageChange }
func (e StageChangeEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after an action has been applied
type PlayerActionEvent struct {
	HandNumber int
	Player     PlayerState
	Stage      Stage
	Action     Action
	Pot        int
	HighestBet int
	timestamp  time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published once the pot has been settled
type HandEndEvent struct {
	Result    *HandResult
	Players   []PlayerState
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }
