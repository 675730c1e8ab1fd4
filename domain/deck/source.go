package deck

import (
	"crypto/cipher"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// StreamSource draws unbiased integers from a cipher stream.
type StreamSource struct {
	stream cipher.Stream
}

// NewStreamSource wraps stream as a Source.
func NewStreamSource(stream cipher.Stream) *StreamSource {
	return &StreamSource{stream: stream}
}

// NewCryptoSource returns a Source backed by kyber's system random stream.
func NewCryptoSource() *StreamSource {
	return NewStreamSource(random.New())
}

func (s *StreamSource) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("deck: invalid argument to Intn: %d", n))
	}
	return int(random.Int(big.NewInt(int64(n)), s.stream).Int64())
}

// Sequence replays a fixed list of Intn answers, cycling when exhausted.
// Each answer is reduced modulo n.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence over values.
func NewSequence(values ...int) *Sequence {
	v := make([]int, len(values))
	copy(v, values)
	return &Sequence{values: v}
}

func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// StackedSource returns a Sequence that makes the first Shuffle of a fresh
// deck put top at the front, in order. The remaining cards follow in
// generation order.
func StackedSource(top ...Card) (*Sequence, error) {
	seen := make(map[Card]bool, len(top))
	target := make([]Card, 0, Size)
	for _, c := range top {
		if !c.rank.Valid() || !c.suit.Valid() {
			return nil, fmt.Errorf("invalid card %d, %d", c.rank, c.suit)
		}
		if seen[c] {
			return nil, fmt.Errorf("card %s stacked twice", c)
		}
		seen[c] = true
		target = append(target, c)
	}
	cur := generate()
	for _, c := range cur {
		if !seen[c] {
			target = append(target, c)
		}
	}

	answers := make([]int, 0, Size-1)
	for i := len(cur) - 1; i > 0; i-- {
		j := indexOf(cur[:i+1], target[i])
		answers = append(answers, j)
		cur[i], cur[j] = cur[j], cur[i]
	}
	return NewSequence(answers...), nil
}

func indexOf(cards []Card, c Card) int {
	for i := range cards {
		if cards[i] == c {
			return i
		}
	}
	return -1
}
