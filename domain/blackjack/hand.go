package blackjack

import (
	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Hand is the ordered set of cards a participant holds this round.
type Hand struct {
	cards []Card
}

// Card is re-exported for callers that only deal with hands.
type Card = deck.Card

// Add appends c to the hand.
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Clear empties the hand, keeping its storage.
func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were added.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Value returns the Blackjack value of the hand. Aces count 11 and are
// dropped to 1 one at a time while the total is over 21.
func (h *Hand) Value() int {
	total, _ := h.score()
	return total
}

// IsSoft reports whether an ace is still being counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.score()
	return soft > 0
}

// IsBust reports whether the hand is over 21.
func (h *Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

// IsBlackjack reports whether the hand is a natural: two cards worth 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Value() == BlackjackValue
}

// score returns the total and the number of aces still counted as 11.
func (h *Hand) score() (total int, softAces int) {
	for _, c := range h.cards {
		if c.Rank() == deck.Ace {
			softAces++
		}
		total += rankValue(c.Rank())
	}
	for total > BlackjackValue && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}

// CardValue returns the value of a single card, counting an ace as 11.
func CardValue(c Card) int {
	return rankValue(c.Rank())
}

func rankValue(r deck.Rank) int {
	switch {
	case r == deck.Ace:
		return 11
	case r >= deck.Two && r <= deck.Ten:
		return int(r) + 1
	case r.IsFace():
		return 10
	default:
		panic(&UnreachableRankError{Rank: r})
	}
}
