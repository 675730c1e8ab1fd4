package blackjack

import (
	"fmt"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

// Round is the state machine for one round of play.
//
// Deal moves it from Dealing to PlayerTurn. Each Step consumes one player
// decision; a Stand runs the dealer's turn to completion in the same call.
// A finished Round is not reused: hands are cleared and a new Round starts
// at Dealing.
type Round struct {
	id          string
	deck        *deck.Deck
	player      *Participant
	dealer      *Participant
	state       State
	playerScore int
	outcome     *Outcome
	decisions   []Decision
}

// StepResult is what a single Step produced. Outcome is nil until the round
// reaches a terminal state.
type StepResult struct {
	Events  []Event
	Outcome *Outcome
}

// NewRound creates a round in the Dealing state. The participants' hands are
// expected to be empty.
func NewRound(id string, d *deck.Deck, player, dealer *Participant) *Round {
	return &Round{
		id:     id,
		deck:   d,
		player: player,
		dealer: dealer,
		state:  Dealing,
	}
}

// Deal gives the player their two opening cards. The dealer is not dealt
// until the player stands.
func (r *Round) Deal() ([]Event, error) {
	if r.state != Dealing {
		return nil, fmt.Errorf("deal in state %s: %w", r.state, ErrWrongState)
	}
	events := []Event{r.turnStarted(r.player)}
	for i := 0; i < 2; i++ {
		ev, err := r.draw(r.player)
		if err != nil {
			return events, fmt.Errorf("dealing to %s: %w", r.player.Name, err)
		}
		events = append(events, ev)
	}
	r.playerScore = r.player.Hand.Value()
	r.state = PlayerTurn
	return events, nil
}

// Step applies one player decision.
func (r *Round) Step(d Decision) (StepResult, error) {
	if r.state != PlayerTurn {
		return StepResult{}, fmt.Errorf("step in state %s: %w", r.state, ErrWrongState)
	}
	if !d.Valid() {
		return StepResult{}, fmt.Errorf("%w: %q", ErrInvalidDecision, string(d))
	}
	r.decisions = append(r.decisions, d)

	var res StepResult
	switch d {
	case Hit:
		ev, err := r.draw(r.player)
		if err != nil {
			return res, fmt.Errorf("hit: %w", err)
		}
		res.Events = append(res.Events, ev)
		r.playerScore = ev.Score
		if ev.Score > BlackjackValue {
			res.Events = append(res.Events, Event{Kind: EventBust, Participant: r.player.Name, Score: ev.Score})
			r.finish(Bust, Outcome{Kind: PlayerBust, PlayerScore: ev.Score})
			res.Outcome = r.Outcome()
		}
	case Stand:
		r.state = DealerTurn
		events, err := r.playDealer()
		res.Events = events
		if err != nil {
			return res, fmt.Errorf("dealer turn: %w", err)
		}
		r.finish(Settled, settle(r.playerScore, r.dealer.Hand.Value()))
		res.Outcome = r.Outcome()
	}
	return res, nil
}

// playDealer deals the dealer two cards and hits while under 17.
func (r *Round) playDealer() ([]Event, error) {
	events := []Event{r.turnStarted(r.dealer)}
	for i := 0; i < 2; i++ {
		ev, err := r.draw(r.dealer)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	score := r.dealer.Hand.Value()
	for score < DealerStandValue {
		ev, err := r.draw(r.dealer)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
		score = ev.Score
	}
	if score > BlackjackValue {
		events = append(events, Event{Kind: EventBust, Participant: r.dealer.Name, Score: score})
	}
	return events, nil
}

func (r *Round) draw(p *Participant) (Event, error) {
	c, err := r.deck.Draw()
	if err != nil {
		return Event{}, err
	}
	p.Hand.Add(c)
	return Event{
		Kind:        EventCardDrawn,
		Participant: p.Name,
		Card:        c,
		CardValue:   CardValue(c),
		Score:       p.Hand.Value(),
	}, nil
}

func (r *Round) turnStarted(p *Participant) Event {
	return Event{Kind: EventTurnStarted, Participant: p.Name, Score: p.Hand.Value()}
}

func (r *Round) finish(s State, o Outcome) {
	r.state = s
	r.outcome = &o
}

// ID returns the identifier the round was created with.
func (r *Round) ID() string {
	return r.id
}

func (r *Round) State() State {
	return r.state
}

// Done reports whether the round has an outcome.
func (r *Round) Done() bool {
	return r.state.Terminal()
}

// Outcome returns a copy of the outcome, or nil while the round is in play.
func (r *Round) Outcome() *Outcome {
	if r.outcome == nil {
		return nil
	}
	o := *r.outcome
	return &o
}

// PlayerScore returns the player's current score, frozen once they stand.
func (r *Round) PlayerScore() int {
	return r.playerScore
}

func (r *Round) DealerScore() int {
	return r.dealer.Hand.Value()
}

func (r *Round) Player() *Participant {
	return r.player
}

func (r *Round) Dealer() *Participant {
	return r.dealer
}

// Decisions returns the accepted player decisions in order.
func (r *Round) Decisions() []Decision {
	out := make([]Decision, len(r.decisions))
	copy(out, r.decisions)
	return out
}
