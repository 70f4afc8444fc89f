package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/fair-dice/domain/fairrand"
)

const genesisPrevHash = "0"

// Transcript is the append-only chain of finalized sessions. It is safe for
// concurrent use.
type Transcript struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewTranscript creates a transcript holding only the genesis block.
func NewTranscript() *Transcript {
	t := &Transcript{}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
		Record:    Record{Purpose: "genesis"},
	}
	genesis.Hash = calculateHash(genesis)
	t.blocks = append(t.blocks, genesis)
	return t
}

// NewRecord turns a finalized session into a transcript record.
func NewRecord(f fairrand.Finalized, label string) Record {
	return Record{
		SessionID:  f.SessionID,
		Purpose:    string(f.Purpose),
		Label:      label,
		Range:      f.Range,
		Commitment: f.Digest.String(),
		Key:        f.Key.String(),
		Value:      f.Value,
		Input:      f.Input,
		Result:     f.Result,
	}
}

// Append verifies the session and links it after the latest block.
func (t *Transcript) Append(f fairrand.Finalized, label string) (Block, error) {
	rec := NewRecord(f, label)
	if err := verifyRecord(rec); err != nil {
		return Block{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	latest := t.blocks[len(t.blocks)-1]
	b := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Record:    rec,
	}
	b.Hash = calculateHash(b)
	if err := validateBlock(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	t.blocks = append(t.blocks, b)
	return b, nil
}

// Latest returns the most recently appended block.
func (t *Transcript) Latest() Block {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.blocks[len(t.blocks)-1]
}

// ByIndex returns the block at index.
func (t *Transcript) ByIndex(index int) (Block, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index >= len(t.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return t.blocks[index], nil
}

// Blocks returns a copy of the chain, genesis included.
func (t *Transcript) Blocks() []Block {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Block(nil), t.blocks...)
}

// Len is the number of blocks, genesis included.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.blocks)
}

// Verify checks the genesis block, the links and hashes of every block and
// the commitment of every record.
func (t *Transcript) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return VerifyChain(t.blocks)
}

// VerifyChain runs the transcript checks on an exported chain.
func VerifyChain(blocks []Block) error {
	if len(blocks) == 0 {
		return fmt.Errorf("empty transcript")
	}
	if blocks[0].PrevHash != genesisPrevHash || blocks[0].Hash != calculateHash(blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}
	for i := 1; i < len(blocks); i++ {
		if err := validateBlock(blocks[i], blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
		if err := verifyRecord(blocks[i].Record); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, current.Hash)
	}
	return nil
}

// verifyRecord replays the commitment and the combined result of rec.
func verifyRecord(rec Record) error {
	key, err := fairrand.ParseKey(rec.Key)
	if err != nil {
		return fmt.Errorf("session %s: %w: %v", rec.SessionID, fairrand.ErrIntegrityViolation, err)
	}
	digest, err := fairrand.ParseDigest(rec.Commitment)
	if err != nil {
		return fmt.Errorf("session %s: %w: %v", rec.SessionID, fairrand.ErrIntegrityViolation, err)
	}
	f, err := fairrand.Revealed{
		Commitment: fairrand.Commitment{
			SessionID: rec.SessionID,
			Purpose:   fairrand.Purpose(rec.Purpose),
			Range:     rec.Range,
			Digest:    digest,
		},
		Key:   key,
		Value: rec.Value,
		Input: rec.Input,
	}.Finalize()
	if err != nil {
		return err
	}
	if f.Result != rec.Result {
		return fmt.Errorf("session %s: %w: recorded result %d, expected %d",
			rec.SessionID, fairrand.ErrIntegrityViolation, rec.Result, f.Result)
	}
	return nil
}

func calculateHash(b Block) string {
	recordBytes, _ := json.Marshal(b.Record)
	data := fmt.Sprintf("%d%d%s%s", b.Index, b.Timestamp, b.PrevHash, recordBytes)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
