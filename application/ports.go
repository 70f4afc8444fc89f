package application

import (
	"context"
	"errors"

	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fairrand"
)

var (
	// ErrAborted is returned by a Counterpart when the user quits.
	ErrAborted = errors.New("game aborted")
	// ErrInvalidSelection is returned when a die outside the pool is chosen.
	ErrInvalidSelection = errors.New("invalid die selection")
)

// Request asks the counterpart for its contribution to a committed session.
type Request struct {
	Commitment fairrand.Commitment
	Label      string
	// Rejected is set when the previous contribution to the same session
	// was refused; it wraps fairrand.ErrOutOfRangeInput.
	Rejected error
}

// Counterpart is the user side of the game. Its calls may block on
// interactive input.
type Counterpart interface {
	// Contribute returns a value in [0, req.Commitment.Range). An out of
	// range value is refused and Contribute is called again.
	Contribute(ctx context.Context, req Request) (int, error)
	// ChooseDie returns one of the available set indices.
	ChooseDie(ctx context.Context, set dice.DiceSet, available []int) (int, error)
}

// Reporter receives the public events of a game.
type Reporter interface {
	Committed(c fairrand.Commitment, label string)
	Revealed(f fairrand.Finalized, label string)
	TurnOrder(first Party, f fairrand.Finalized)
	DieChosen(p Party, index int, d dice.Die)
	Rolled(round int, p Party, face int)
	RoundOver(r RoundResult)
}

type nopReporter struct{}

func (nopReporter) Committed(fairrand.Commitment, string) {}
func (nopReporter) Revealed(fairrand.Finalized, string)   {}
func (nopReporter) TurnOrder(Party, fairrand.Finalized)   {}
func (nopReporter) DieChosen(Party, int, dice.Die)        {}
func (nopReporter) Rolled(int, Party, int)                {}
func (nopReporter) RoundOver(RoundResult)                 {}
