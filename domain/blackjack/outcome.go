package blackjack

import "fmt"

type OutcomeKind string

const (
	PlayerBust OutcomeKind = "player_bust"
	PlayerWin  OutcomeKind = "player_win"
	DealerWin  OutcomeKind = "dealer_win"
	Tie        OutcomeKind = "tie"
)

// Outcome is the terminal result of a round. DealerScore is 0 when the
// player went bust, as the dealer never played.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	PlayerScore int         `json:"player_score"`
	DealerScore int         `json:"dealer_score"`
}

// PlayerWon reports whether the round was won by the player.
func (o Outcome) PlayerWon() bool {
	return o.Kind == PlayerWin
}

// String returns the history line recorded for the round.
func (o Outcome) String() string {
	switch o.Kind {
	case PlayerBust:
		return fmt.Sprintf("You lost with %d points; you went bust.", o.PlayerScore)
	case PlayerWin:
		return fmt.Sprintf("You won with %d points; dealer lost with %d.", o.PlayerScore, o.DealerScore)
	case Tie:
		return fmt.Sprintf("You tied with the dealer, with %d points.", o.PlayerScore)
	case DealerWin:
		return fmt.Sprintf("You lost with %d points; dealer won with %d.", o.PlayerScore, o.DealerScore)
	default:
		return fmt.Sprintf("unknown outcome %q", string(o.Kind))
	}
}

// settle compares the frozen player score with the dealer's final score.
func settle(player, dealer int) Outcome {
	o := Outcome{PlayerScore: player, DealerScore: dealer}
	switch {
	case player > dealer || dealer > BlackjackValue:
		o.Kind = PlayerWin
	case player == dealer:
		o.Kind = Tie
	default:
		o.Kind = DealerWin
	}
	return o
}
