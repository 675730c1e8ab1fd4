package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// Session owns the deck, the player, the dealer and the ledger for the whole
// game. It is not safe for concurrent use.
type Session struct {
	deck       *deck.Deck
	player     *blackjack.Participant
	dealer     *blackjack.Participant
	ledger     *ledger.Ledger
	logger     *slog.Logger
	newID      func() string
	playerName string
	dealerName string
}

// NewSession creates a session whose deck is shuffled by src.
func NewSession(src deck.Source, opts ...sessionOption) *Session {
	s := Session{
		playerName: blackjack.DefaultPlayerName,
		dealerName: blackjack.DefaultDealerName,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	if s.ledger == nil {
		s.ledger = ledger.New()
	}
	s.deck = deck.New(src)
	s.player = blackjack.NewParticipant(s.playerName)
	s.dealer = blackjack.NewParticipant(s.dealerName)
	return &s
}

// NewRound clears both hands, reshuffles the full deck and deals the
// player's opening cards.
func (s *Session) NewRound() (*blackjack.Round, []blackjack.Event, error) {
	s.player.Hand.Clear()
	s.dealer.Hand.Clear()
	s.deck.Shuffle()

	r := blackjack.NewRound(s.newID(), s.deck, s.player, s.dealer)
	s.logger.Info("round started", "round", r.ID(), "player", s.player.Name)
	events, err := r.Deal()
	if err != nil {
		return r, events, fmt.Errorf("round %s: %w", r.ID(), err)
	}
	return r, events, nil
}

// Play runs rounds until c chooses Quit. Cancellation of ctx is honoured
// between rounds only; a round in flight always runs to its outcome unless
// the Controller itself fails.
func (s *Session) Play(ctx context.Context, c Controller) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := s.playRound(ctx, c)
		if err != nil {
			return err
		}
		choice, err := s.askReplay(ctx, c, rec)
		if err != nil {
			return err
		}
		if choice == blackjack.Quit {
			stats := s.ledger.Stats()
			s.logger.Info("session ended", "rounds", stats.Rounds, "wins", stats.Wins, "losses", stats.Losses, "ties", stats.Ties)
			return nil
		}
	}
}

func (s *Session) playRound(ctx context.Context, c Controller) (ledger.RoundRecord, error) {
	r, events, err := s.NewRound()
	s.notify(c, events)
	if err != nil {
		return ledger.RoundRecord{}, err
	}

	for !r.Done() {
		d, err := c.Decide(ctx, newRoundView(r, s.deck))
		if err != nil {
			return ledger.RoundRecord{}, fmt.Errorf("round %s: decide: %w", r.ID(), err)
		}
		res, err := r.Step(d)
		if errors.Is(err, blackjack.ErrInvalidDecision) {
			s.logger.Warn("decision rejected", "round", r.ID(), "decision", string(d))
			continue
		}
		s.notify(c, res.Events)
		if err != nil {
			return ledger.RoundRecord{}, fmt.Errorf("round %s: %w", r.ID(), err)
		}
		s.logger.Debug("decision applied", "round", r.ID(), "decision", string(d), "score", r.PlayerScore())
	}

	rec := ledger.NewRoundRecord(r)
	if _, err := s.ledger.Append(rec); err != nil {
		return rec, fmt.Errorf("round %s: record: %w", r.ID(), err)
	}
	s.logger.Info("round settled",
		"round", r.ID(),
		"outcome", string(rec.Outcome.Kind),
		"player_score", rec.Outcome.PlayerScore,
		"dealer_score", rec.Outcome.DealerScore,
	)
	return rec, nil
}

func (s *Session) askReplay(ctx context.Context, c Controller, rec ledger.RoundRecord) (blackjack.ReplayChoice, error) {
	for {
		choice, err := c.Settled(ctx, rec)
		if err != nil {
			return "", fmt.Errorf("replay: %w", err)
		}
		if err := blackjack.ValidateReplay(choice); err != nil {
			s.logger.Warn("replay choice rejected", "choice", string(choice))
			continue
		}
		return choice, nil
	}
}

func (s *Session) notify(c Controller, events []blackjack.Event) {
	for _, ev := range events {
		if ev.Kind == blackjack.EventCardDrawn {
			s.logger.Debug("card drawn", "participant", ev.Participant, "card", ev.Card.String(), "value", ev.CardValue, "score", ev.Score)
		}
		c.Observe(ev)
	}
}

// Ledger returns the history of settled rounds.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Stats tallies the rounds played so far.
func (s *Session) Stats() ledger.Stats {
	return s.ledger.Stats()
}

func (s *Session) Player() *blackjack.Participant {
	return s.player
}

func (s *Session) Dealer() *blackjack.Participant {
	return s.dealer
}

// CardsLeft returns the undrawn cards in the current shuffle.
func (s *Session) CardsLeft() int {
	return s.deck.CardsLeft()
}
