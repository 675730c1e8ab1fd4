package deck

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateAllCardsOnce(t *testing.T) {
	d := New(rand.New(rand.NewSource(1)))
	cards := d.Cards()
	if len(cards) != Size {
		t.Fatalf("expected %d cards, got %d", Size, len(cards))
	}
	seen := map[Card]int{}
	for _, c := range cards {
		seen[c]++
	}
	for r := Ace; r <= King; r++ {
		for s := Diamonds; s <= Clubs; s++ {
			c := MustCard(r, s)
			if seen[c] != 1 {
				t.Errorf("expected %s exactly once, got %d", c, seen[c])
			}
		}
	}
}

func TestGenerationOrderIsRankMajor(t *testing.T) {
	cards := New(NewSequence()).Cards()
	if cards[0] != MustCard(Ace, Diamonds) {
		t.Fatalf("expected Ace of Diamonds first, got %s", cards[0])
	}
	if cards[3] != MustCard(Ace, Clubs) {
		t.Fatalf("expected Ace of Clubs fourth, got %s", cards[3])
	}
	if cards[4] != MustCard(Two, Diamonds) {
		t.Fatalf("expected Two of Diamonds fifth, got %s", cards[4])
	}
	if cards[Size-1] != MustCard(King, Clubs) {
		t.Fatalf("expected King of Clubs last, got %s", cards[Size-1])
	}
}

func TestDrawAllThenEmpty(t *testing.T) {
	d := New(rand.New(rand.NewSource(42)))
	d.Shuffle()
	seen := map[Card]bool{}
	for i := 0; i < Size; i++ {
		if !d.HasCard() {
			t.Fatalf("expected a card at draw %d", i+1)
		}
		c, err := d.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Fatalf("card %s drawn twice", c)
		}
		seen[c] = true
		if d.CardsLeft() != Size-i-1 {
			t.Fatalf("expected %d cards left, got %d", Size-i-1, d.CardsLeft())
		}
	}
	if d.HasCard() {
		t.Fatal("expected empty deck")
	}
	_, err := d.Draw()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("expected ErrEmptyDeck, got %v", err)
	}
	if d.CardsLeft() != 0 {
		t.Fatalf("expected 0 cards left, got %d", d.CardsLeft())
	}
}

func TestCardsDoesNotAlias(t *testing.T) {
	d := New(NewSequence())
	cards := d.Cards()
	cards[0] = MustCard(King, Clubs)
	c, err := d.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if c != MustCard(Ace, Diamonds) {
		t.Fatalf("expected Ace of Diamonds, got %s", c)
	}
}

func TestNewCardValidation(t *testing.T) {
	tests := []struct {
		name  string
		rank  Rank
		suit  Suit
		valid bool
	}{
		{name: "ace of spades", rank: Ace, suit: Spades, valid: true},
		{name: "king of clubs", rank: King, suit: Clubs, valid: true},
		{name: "rank out of range", rank: Rank(13), suit: Hearts, valid: false},
		{name: "suit out of range", rank: Two, suit: Suit(4), valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.rank, tt.suit)
			if (err == nil) != tt.valid {
				t.Errorf("NewCard(%d, %d) error = %v, want valid %v", tt.rank, tt.suit, err, tt.valid)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	c := MustCard(Ace, Spades)
	if c.String() != "Ace of Spades" {
		t.Fatalf("expected Ace of Spades, got %s", c.String())
	}
	if c.Short() != "A♠" {
		t.Fatalf("expected A♠, got %s", c.Short())
	}
	c = MustCard(Ten, Hearts)
	if c.Short() != "10♥" {
		t.Fatalf("expected 10♥, got %s", c.Short())
	}
	if !c.Suit().IsRed() {
		t.Fatal("expected hearts to be red")
	}
	if !MustCard(Queen, Clubs).Rank().IsFace() {
		t.Fatal("expected queen to be a face card")
	}
}
