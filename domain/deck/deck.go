package deck

import (
	"errors"
	"fmt"
)

// Size is the number of cards in a standard deck.
const Size = rankCount * suitCount

// ErrEmptyDeck is returned by Draw once every card has been drawn since the
// last shuffle.
var ErrEmptyDeck = errors.New("no cards left in deck")

// Source provides uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Deck is an ordered set of the 52 distinct cards with a draw cursor.
// The cursor is always in [0, Size]; cards before it have been dealt.
type Deck struct {
	cards []Card
	drawn int
	src   Source
}

// New creates a deck whose shuffles are driven by src. The cards are laid
// out rank-major, suit-minor until the first Shuffle.
func New(src Source) *Deck {
	if src == nil {
		panic("deck: nil random source")
	}
	return &Deck{
		cards: generate(),
		src:   src,
	}
}

func generate() []Card {
	cards := make([]Card, 0, Size)
	for r := Ace; r <= King; r++ {
		for s := Diamonds; s <= Clubs; s++ {
			cards = append(cards, Card{rank: r, suit: s})
		}
	}
	return cards
}

// Draw returns the card under the cursor and advances the cursor.
func (d *Deck) Draw() (Card, error) {
	if d.drawn >= len(d.cards) {
		return Card{}, fmt.Errorf("draw %d: %w", d.drawn+1, ErrEmptyDeck)
	}
	c := d.cards[d.drawn]
	d.drawn++
	return c, nil
}

// HasCard reports whether at least one card is left to draw.
func (d *Deck) HasCard() bool {
	return d.drawn < len(d.cards)
}

// CardsLeft returns the number of undrawn cards.
func (d *Deck) CardsLeft() int {
	return len(d.cards) - d.drawn
}

// Cards returns a copy of the full deck order, drawn cards included.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
