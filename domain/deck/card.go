package deck

import "fmt"

// Rank is the face value of a card. Ordinals run from Ace (0) to King (12).
type Rank uint8

const (
	Ace Rank = iota
	Two
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
)

// Suit has no effect on scoring.
type Suit uint8

const (
	Diamonds Suit = iota
	Hearts
	Spades
	Clubs
)

const (
	rankCount = 13
	suitCount = 4
)

var rankNames = [rankCount]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

var rankShort = [rankCount]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

var suitNames = [suitCount]string{"Diamonds", "Hearts", "Spades", "Clubs"}

var suitSymbols = [suitCount]string{"♦", "♥", "♠", "♣"}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r < rankCount
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Short returns the index label printed in the corner of a card (A, 2..10, J, Q, K).
func (r Rank) Short() string {
	if !r.Valid() {
		return "?"
	}
	return rankShort[r]
}

// IsFace reports whether r is a Jack, Queen or King.
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

// Valid reports whether s is one of the 4 suits.
func (s Suit) Valid() bool {
	return s < suitCount
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph (♦, ♥, ♠, ♣).
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Card is an immutable playing card. Two cards are equal iff rank and suit match.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error if rank or suit is outside its enumeration.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the long form, e.g. "Ace of Spades".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

// Short returns the compact form, e.g. "A♠" or "10♥".
func (c Card) Short() string {
	return c.rank.Short() + c.suit.Symbol()
}
