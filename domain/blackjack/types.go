package blackjack

import (
	"github.com/luca-patrignani/blackjack/domain/deck"
)

const (
	// BlackjackValue is the best possible hand value.
	BlackjackValue = 21
	// DealerStandValue is the lowest total the dealer stands on.
	DealerStandValue = 17
)

const (
	DefaultPlayerName = "Player"
	DefaultDealerName = "Dealer"
)

// Decision is the player's choice during their turn.
type Decision string

const (
	Hit   Decision = "hit"
	Stand Decision = "stand"
)

// Valid reports whether d is Hit or Stand.
func (d Decision) Valid() bool {
	return d == Hit || d == Stand
}

// ReplayChoice is the player's choice once a round is settled.
type ReplayChoice string

const (
	Replay ReplayChoice = "replay"
	Quit   ReplayChoice = "quit"
)

// Valid reports whether c is Replay or Quit.
func (c ReplayChoice) Valid() bool {
	return c == Replay || c == Quit
}

// State is a node of the round state machine.
type State string

const (
	Dealing    State = "dealing"
	PlayerTurn State = "player_turn"
	DealerTurn State = "dealer_turn"
	Bust       State = "bust"
	Settled    State = "settled"
)

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == Bust || s == Settled
}

type EventKind string

const (
	EventTurnStarted EventKind = "turn_started"
	EventCardDrawn   EventKind = "card_drawn"
	EventBust        EventKind = "bust"
)

// Event is something that happened during a round.
// Card and CardValue are only set for EventCardDrawn.
type Event struct {
	Kind        EventKind `json:"kind"`
	Participant string    `json:"participant"`
	Card        deck.Card `json:"-"`
	CardValue   int       `json:"card_value,omitempty"`
	Score       int       `json:"score"`
}

// Participant is a named seat with a hand. Nothing but the hand changes
// between rounds.
type Participant struct {
	Name string
	Hand Hand
}

func NewParticipant(name string) *Participant {
	return &Participant{Name: name}
}
