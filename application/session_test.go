package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/domain/deck"
	"github.com/luca-patrignani/blackjack/ledger"
)

// scriptedController replays fixed decisions and replay choices. When a
// script runs out it stands and quits.
type scriptedController struct {
	decisions []blackjack.Decision
	replays   []blackjack.ReplayChoice
	events    []blackjack.Event
	records   []ledger.RoundRecord
	views     []RoundView
	decideErr error
}

func (c *scriptedController) Decide(ctx context.Context, view RoundView) (blackjack.Decision, error) {
	if c.decideErr != nil {
		return "", c.decideErr
	}
	c.views = append(c.views, view)
	if len(c.decisions) == 0 {
		return blackjack.Stand, nil
	}
	d := c.decisions[0]
	c.decisions = c.decisions[1:]
	return d, nil
}

func (c *scriptedController) Observe(ev blackjack.Event) {
	c.events = append(c.events, ev)
}

func (c *scriptedController) Settled(ctx context.Context, rec ledger.RoundRecord) (blackjack.ReplayChoice, error) {
	c.records = append(c.records, rec)
	if len(c.replays) == 0 {
		return blackjack.Quit, nil
	}
	r := c.replays[0]
	c.replays = c.replays[1:]
	return r, nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("round-%d", n)
	}
}

func TestPlayRecordsEveryRound(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(11)), WithIDGenerator(sequentialIDs()), WithPlayerName("Lyra"))
	c := &scriptedController{replays: []blackjack.ReplayChoice{blackjack.Replay, blackjack.Replay}}
	if err := s.Play(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	rounds := s.Ledger().Rounds()
	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(rounds))
	}
	for i, r := range rounds {
		if r.RoundID != fmt.Sprintf("round-%d", i+1) {
			t.Errorf("expected round-%d, got %s", i+1, r.RoundID)
		}
		if r.Player != "Lyra" {
			t.Errorf("expected player Lyra, got %s", r.Player)
		}
		if len(r.PlayerCards) != 2 {
			t.Errorf("round %d: expected 2 player cards after a stand, got %d", i+1, len(r.PlayerCards))
		}
		if len(r.DealerCards) < 2 {
			t.Errorf("round %d: expected the dealer to play, got %v", i+1, r.DealerCards)
		}
	}
	if len(c.records) != 3 {
		t.Fatalf("expected 3 settled notifications, got %d", len(c.records))
	}
	if err := s.Ledger().Verify(); err != nil {
		t.Fatalf("expected a valid ledger, got %v", err)
	}
	if s.Stats().Rounds != 3 {
		t.Fatalf("expected 3 rounds in stats, got %d", s.Stats().Rounds)
	}
}

func TestPlayEventsStartWithPlayerTurn(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(5)))
	c := &scriptedController{}
	if err := s.Play(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	if len(c.events) < 3 {
		t.Fatalf("expected at least 3 events, got %d", len(c.events))
	}
	if c.events[0].Kind != blackjack.EventTurnStarted || c.events[0].Participant != blackjack.DefaultPlayerName {
		t.Fatalf("expected player turn start, got %+v", c.events[0])
	}
	if c.events[1].Kind != blackjack.EventCardDrawn || c.events[2].Kind != blackjack.EventCardDrawn {
		t.Fatalf("expected two opening draws, got %+v %+v", c.events[1], c.events[2])
	}
	if len(c.views) != 1 || len(c.views[0].PlayerCards) != 2 || c.views[0].CardsLeft != deck.Size-2 {
		t.Fatalf("unexpected decision view %+v", c.views)
	}
}

func TestInvalidInputIsRetried(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(8)))
	c := &scriptedController{
		decisions: []blackjack.Decision{"double", "split", blackjack.Stand},
		replays:   []blackjack.ReplayChoice{"maybe", blackjack.Quit},
	}
	if err := s.Play(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	rounds := s.Ledger().Rounds()
	if len(rounds) != 1 {
		t.Fatalf("expected 1 round, got %d", len(rounds))
	}
	if len(rounds[0].Decisions) != 1 || rounds[0].Decisions[0] != blackjack.Stand {
		t.Fatalf("expected only the stand to be recorded, got %v", rounds[0].Decisions)
	}
	if len(c.views) != 3 {
		t.Fatalf("expected 3 decision prompts, got %d", len(c.views))
	}
	if len(c.records) != 2 {
		t.Fatalf("expected 2 replay prompts, got %d", len(c.records))
	}
}

func TestControllerErrorEndsSession(t *testing.T) {
	boom := errors.New("stdin closed")
	s := NewSession(rand.New(rand.NewSource(2)))
	err := s.Play(context.Background(), &scriptedController{decideErr: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if len(s.Ledger().Rounds()) != 0 {
		t.Fatal("expected no recorded rounds")
	}
}

func TestCancelledContextChecksRoundBoundary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSession(rand.New(rand.NewSource(2)))
	c := &scriptedController{}
	if err := s.Play(ctx, c); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(c.events) != 0 {
		t.Fatalf("expected no round to start, got %d events", len(c.events))
	}
}

// cancellingController cancels the session context during the first round.
type cancellingController struct {
	scriptedController
	cancel context.CancelFunc
}

func (c *cancellingController) Decide(ctx context.Context, view RoundView) (blackjack.Decision, error) {
	c.cancel()
	return c.scriptedController.Decide(ctx, view)
}

func TestCancelMidRoundFinishesRound(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewSession(rand.New(rand.NewSource(4)))
	c := &cancellingController{
		scriptedController: scriptedController{replays: []blackjack.ReplayChoice{blackjack.Replay}},
		cancel:             cancel,
	}
	if err := s.Play(ctx, c); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(s.Ledger().Rounds()) != 1 {
		t.Fatalf("expected the round in flight to be settled, got %d rounds", len(s.Ledger().Rounds()))
	}
}

func TestSameSeedSameSession(t *testing.T) {
	play := func() []blackjack.Outcome {
		s := NewSession(rand.New(rand.NewSource(2023)))
		c := &scriptedController{
			decisions: []blackjack.Decision{blackjack.Hit, blackjack.Stand, blackjack.Stand, blackjack.Hit, blackjack.Stand},
			replays:   []blackjack.ReplayChoice{blackjack.Replay, blackjack.Replay, blackjack.Replay},
		}
		if err := s.Play(context.Background(), c); err != nil {
			t.Fatal(err)
		}
		var out []blackjack.Outcome
		for _, r := range s.Ledger().Rounds() {
			out = append(out, r.Outcome)
		}
		return out
	}
	a, b := play(), play()
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("expected 4 rounds each, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("round %d: expected %+v, got %+v", i+1, a[i], b[i])
		}
	}
}

func TestNewRoundResetsTable(t *testing.T) {
	s := NewSession(rand.New(rand.NewSource(1)))
	r, _, err := s.NewRound()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Step(blackjack.Stand); err != nil {
		t.Fatal(err)
	}
	if s.Dealer().Hand.Len() < 2 {
		t.Fatalf("expected the dealer to hold cards, got %d", s.Dealer().Hand.Len())
	}
	r, _, err = s.NewRound()
	if err != nil {
		t.Fatal(err)
	}
	if s.Dealer().Hand.Len() != 0 {
		t.Fatalf("expected the dealer hand to be cleared, got %d cards", s.Dealer().Hand.Len())
	}
	if s.Player().Hand.Len() != 2 {
		t.Fatalf("expected 2 player cards, got %d", s.Player().Hand.Len())
	}
	if s.CardsLeft() != deck.Size-2 {
		t.Fatalf("expected a full reshuffle, %d cards left", s.CardsLeft())
	}
	if r.State() != blackjack.PlayerTurn {
		t.Fatalf("expected %s, got %s", blackjack.PlayerTurn, r.State())
	}
}

func TestSharedLedger(t *testing.T) {
	l := ledger.New()
	s := NewSession(rand.New(rand.NewSource(9)), WithLedger(l), WithDealerName("House"))
	if err := s.Play(context.Background(), &scriptedController{}); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Fatalf("expected genesis plus one round, got %d blocks", l.Len())
	}
	if got := l.Latest().Record.Dealer; got != "House" {
		t.Fatalf("expected dealer House, got %s", got)
	}
}
