package fairrand

import (
	"fmt"

	"github.com/google/uuid"
)

type State int

const (
	StateCreated State = iota
	StateCommitted
	StateInputReceived
	StateRevealed
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateCommitted:
		return "committed"
	case StateInputReceived:
		return "counterpart-input-received"
	case StateRevealed:
		return "revealed"
	case StateFinalized:
		return "finalized"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Purpose labels the decision a session is used for.
type Purpose string

const (
	PurposeTurnOrder Purpose = "turn-order"
	PurposeRoll      Purpose = "roll"
)

// Commitment is the public part of a session, safe to show before reveal.
type Commitment struct {
	SessionID uuid.UUID
	Purpose   Purpose
	Range     int
	Digest    Digest
}

// Committed is a session whose digest is published and which waits for the
// counterpart input.
type Committed struct {
	public   Commitment
	key      SecretKey
	value    int
	consumed bool
}

// NewSession draws a fresh key and a uniform value in [0, n) and commits to
// them.
func NewSession(sampler *Sampler, purpose Purpose, n int) (*Committed, error) {
	if n < 1 {
		return nil, fmt.Errorf("new %s session: %w: %d", purpose, ErrInvalidRange, n)
	}
	key, err := sampler.Key()
	if err != nil {
		return nil, fmt.Errorf("new %s session: %w", purpose, err)
	}
	value, err := sampler.Sample(n)
	if err != nil {
		return nil, fmt.Errorf("new %s session: %w", purpose, err)
	}
	return &Committed{
		public: Commitment{
			SessionID: uuid.New(),
			Purpose:   purpose,
			Range:     n,
			Digest:    Commit(key, value),
		},
		key:   key,
		value: value,
	}, nil
}

// Commitment returns the public part of the session.
func (c *Committed) Commitment() Commitment {
	return c.public
}

// State is always StateCommitted; creation commits synchronously.
func (c *Committed) State() State {
	return StateCommitted
}

// Receive records the counterpart input. An out of range input is rejected
// and the session keeps waiting; a valid input consumes the session and
// hands the secret over to the returned *Received.
func (c *Committed) Receive(input int) (*Received, error) {
	if c.consumed {
		return nil, fmt.Errorf("session %s: %w", c.public.SessionID, ErrSessionConsumed)
	}
	if input < 0 || input >= c.public.Range {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRangeInput, input, c.public.Range)
	}
	r := &Received{
		public: c.public,
		key:    c.key,
		value:  c.value,
		input:  input,
	}
	c.wipe()
	return r, nil
}

// Discard destroys the secret of an abandoned session without revealing it.
func (c *Committed) Discard() {
	c.wipe()
}

func (c *Committed) wipe() {
	c.key = SecretKey{}
	c.value = 0
	c.consumed = true
}

// Received holds the counterpart input; the secret is still undisclosed.
type Received struct {
	public Commitment
	key    SecretKey
	value  int
	input  int
}

func (r *Received) Commitment() Commitment {
	return r.public
}

// Input is the accepted counterpart contribution.
func (r *Received) Input() int {
	return r.input
}

func (r *Received) State() State {
	return StateInputReceived
}

// Reveal discloses the key and the value.
func (r *Received) Reveal() Revealed {
	return Revealed{
		Commitment: r.public,
		Key:        r.key,
		Value:      r.value,
		Input:      r.input,
	}
}

// Revealed is everything the counterpart needs to check the commitment.
type Revealed struct {
	Commitment
	Key   SecretKey
	Value int
	Input int
}

func (r Revealed) State() State {
	return StateRevealed
}

// Verify checks the disclosed key and value against the published digest.
func (r Revealed) Verify() error {
	if !Verify(r.Key, r.Value, r.Digest) {
		return fmt.Errorf("session %s: %w: disclosed value %d does not match commitment %s",
			r.SessionID, ErrIntegrityViolation, r.Value, r.Digest)
	}
	if r.Value < 0 || r.Value >= r.Range {
		return fmt.Errorf("session %s: %w: disclosed value %d not in [0, %d)",
			r.SessionID, ErrIntegrityViolation, r.Value, r.Range)
	}
	return nil
}

// Finalize verifies the disclosure and combines both contributions.
func (r Revealed) Finalize() (Finalized, error) {
	if err := r.Verify(); err != nil {
		return Finalized{}, err
	}
	if r.Input < 0 || r.Input >= r.Range {
		return Finalized{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRangeInput, r.Input, r.Range)
	}
	return Finalized{
		Revealed: r,
		Result:   (r.Input + r.Value) % r.Range,
	}, nil
}

// Finalized carries the combined result together with its disclosure.
type Finalized struct {
	Revealed
	Result int
}

func (f Finalized) State() State {
	return StateFinalized
}
