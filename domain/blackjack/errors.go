package blackjack

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

var (
	// ErrInvalidDecision is returned when a Decision or ReplayChoice is outside
	// its enumeration. The round is left unchanged.
	ErrInvalidDecision = errors.New("invalid decision")
	// ErrWrongState is returned when an operation is not allowed in the
	// current state of the round.
	ErrWrongState = errors.New("operation not allowed in current state")
)

// UnreachableRankError is the panic value raised when scoring meets a rank
// outside the 13-value enumeration.
type UnreachableRankError struct {
	Rank deck.Rank
}

func (e *UnreachableRankError) Error() string {
	return fmt.Sprintf("unreachable rank %d", uint8(e.Rank))
}

// ValidateReplay returns ErrInvalidDecision if c is not Replay or Quit.
func ValidateReplay(c ReplayChoice) error {
	if !c.Valid() {
		return fmt.Errorf("%w: replay choice %q", ErrInvalidDecision, string(c))
	}
	return nil
}
