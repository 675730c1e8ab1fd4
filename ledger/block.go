package ledger

import (
	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// Block is one settled round in the chain.
type Block struct {
	Index     int         `json:"index"`
	Timestamp int64       `json:"timestamp"`
	PrevHash  string      `json:"prev_hash"`
	Hash      string      `json:"hash"`
	Record    RoundRecord `json:"record"`
}

// RoundRecord is everything worth remembering about a settled round.
// Cards are stored in their short form ("A♠").
type RoundRecord struct {
	RoundID     string               `json:"round_id"`
	Player      string               `json:"player"`
	Dealer      string               `json:"dealer"`
	PlayerCards []string             `json:"player_cards"`
	DealerCards []string             `json:"dealer_cards"`
	Decisions   []blackjack.Decision `json:"decisions"`
	Outcome     blackjack.Outcome    `json:"outcome"`
}

// NewRoundRecord snapshots a finished round.
func NewRoundRecord(r *blackjack.Round) RoundRecord {
	rec := RoundRecord{
		RoundID:     r.ID(),
		Player:      r.Player().Name,
		Dealer:      r.Dealer().Name,
		PlayerCards: shortCards(r.Player().Hand.Cards()),
		DealerCards: shortCards(r.Dealer().Hand.Cards()),
		Decisions:   r.Decisions(),
	}
	if o := r.Outcome(); o != nil {
		rec.Outcome = *o
	}
	return rec
}

func shortCards(cards []blackjack.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Short()
	}
	return out
}

func (r RoundRecord) clone() RoundRecord {
	r.PlayerCards = append([]string(nil), r.PlayerCards...)
	r.DealerCards = append([]string(nil), r.DealerCards...)
	r.Decisions = append([]blackjack.Decision(nil), r.Decisions...)
	return r
}

// Stats tallies the outcomes in a ledger.
type Stats struct {
	Rounds     int `json:"rounds"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	Ties       int `json:"ties"`
	Busts      int `json:"busts"`
	DealerBust int `json:"dealer_busts"`
}
