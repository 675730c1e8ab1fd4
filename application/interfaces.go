package application

import (
	"context"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// Controller is the outside world as seen by a Session: it supplies decisions
// and is told what happened.
type Controller interface {
	// Decide returns the player's next move. Values outside {Hit, Stand} are
	// rejected and Decide is called again.
	Decide(ctx context.Context, view RoundView) (blackjack.Decision, error)

	// Observe receives every event in the order it happened.
	Observe(ev blackjack.Event)

	// Settled receives the finished round and returns whether to play again.
	// Values outside {Replay, Quit} are rejected and Settled is called again.
	Settled(ctx context.Context, rec ledger.RoundRecord) (blackjack.ReplayChoice, error)
}

// RoundView is what the player can see when deciding.
type RoundView struct {
	RoundID     string
	Player      string
	PlayerCards []deck.Card
	PlayerScore int
	Soft        bool
	CardsLeft   int
}

func newRoundView(r *blackjack.Round, d *deck.Deck) RoundView {
	p := r.Player()
	return RoundView{
		RoundID:     r.ID(),
		Player:      p.Name,
		PlayerCards: p.Hand.Cards(),
		PlayerScore: p.Hand.Value(),
		Soft:        p.Hand.IsSoft(),
		CardsLeft:   d.CardsLeft(),
	}
}
