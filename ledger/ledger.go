package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/blackjack/domain/blackjack"
)

// ErrInvalidBlock is wrapped by every chain integrity failure.
var ErrInvalidBlock = errors.New("invalid block")

// Ledger is an append-only chain of settled rounds.
type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	now    func() time.Time
}

// New creates a ledger with an initialized genesis block.
// The genesis block has index 0, previous hash "0" and an empty record.
func New() *Ledger {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Ledger {
	l := &Ledger{
		blocks: make([]Block, 0),
		now:    now,
	}
	genesis := Block{
		Index:     0,
		Timestamp: l.now().Unix(),
		PrevHash:  "0",
		Record:    RoundRecord{RoundID: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Append adds a settled round to the chain and returns the new block.
func (l *Ledger) Append(rec RoundRecord) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.blocks[len(l.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: l.now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec.clone(),
	}
	b.Hash = calculateHash(b)

	if err := validateBlock(b, latest); err != nil {
		return Block{}, err
	}
	l.blocks = append(l.blocks, b)
	return copyBlock(b), nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyBlock(l.blocks[len(l.blocks)-1])
}

// ByIndex retrieves a block by its index in the chain.
func (l *Ledger) ByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return copyBlock(l.blocks[index]), nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Rounds returns the settled rounds, oldest first.
func (l *Ledger) Rounds() []RoundRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]RoundRecord, 0, len(l.blocks)-1)
	for _, b := range l.blocks[1:] {
		out = append(out, b.Record.clone())
	}
	return out
}

// Verify validates the integrity of the entire chain: the genesis block, then
// each block's index continuity, previous hash linkage and own hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.blocks[0].PrevHash != "0" || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("genesis: %w", ErrInvalidBlock)
	}
	for i := 1; i < len(l.blocks); i++ {
		if err := validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// Stats tallies the outcomes of every recorded round.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var s Stats
	for _, b := range l.blocks[1:] {
		o := b.Record.Outcome
		s.Rounds++
		switch o.Kind {
		case blackjack.PlayerWin:
			s.Wins++
			if o.DealerScore > blackjack.BlackjackValue {
				s.DealerBust++
			}
		case blackjack.PlayerBust:
			s.Losses++
			s.Busts++
		case blackjack.DealerWin:
			s.Losses++
		case blackjack.Tie:
			s.Ties++
		}
	}
	return s
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected index %d, got %d", ErrInvalidBlock, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: expected prev hash %s, got %s", ErrInvalidBlock, previous.Hash, current.PrevHash)
	}
	expected := calculateHash(current)
	if current.Hash != expected {
		return fmt.Errorf("%w: expected hash %s, got %s", ErrInvalidBlock, expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of the block's index, timestamp, previous
// hash and JSON-encoded record.
func calculateHash(b Block) string {
	record, _ := json.Marshal(b.Record)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, record)
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func copyBlock(b Block) Block {
	b.Record = b.Record.clone()
	return b
}
