package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/luca-patrignani/fair-dice/config"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fairrand"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// GameOrchestrator sequences the fair-random sessions of one game: turn
// order, die selection and rolls. It holds no secret of its own.
type GameOrchestrator struct {
	set        dice.DiceSet
	matrix     dice.Matrix
	sampler    *fairrand.Sampler
	user       Counterpart
	reporter   Reporter
	transcript *ledger.Transcript
	logger     *slog.Logger
	rounds     int
	firstPick  config.FirstPick
}

// Option customises a GameOrchestrator.
type Option func(*GameOrchestrator)

func WithReporter(r Reporter) Option {
	return func(g *GameOrchestrator) {
		g.reporter = r
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *GameOrchestrator) {
		g.logger = l
	}
}

func WithTranscript(t *ledger.Transcript) Option {
	return func(g *GameOrchestrator) {
		g.transcript = t
	}
}

// WithConfig applies the round count and the pick rule of cfg.
func WithConfig(cfg config.Config) Option {
	return func(g *GameOrchestrator) {
		g.rounds = cfg.Rounds
		g.firstPick = cfg.FirstPick
	}
}

// NewGameOrchestrator prepares a game over set. Without options it plays one
// round, lets the turn-order winner pick first, discards logs and records
// into a fresh transcript.
func NewGameOrchestrator(set dice.DiceSet, sampler *fairrand.Sampler, user Counterpart, opts ...Option) *GameOrchestrator {
	g := &GameOrchestrator{
		set:        set,
		matrix:     set.Matrix(),
		sampler:    sampler,
		user:       user,
		reporter:   nopReporter{},
		transcript: ledger.NewTranscript(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		rounds:     1,
		firstPick:  config.FirstPickWinner,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GameOrchestrator) Matrix() dice.Matrix {
	return g.matrix
}

func (g *GameOrchestrator) Transcript() *ledger.Transcript {
	return g.transcript
}

// Play runs a whole game. Any integrity violation ends the game with an
// error wrapping fairrand.ErrIntegrityViolation.
func (g *GameOrchestrator) Play(ctx context.Context) (Result, error) {
	var res Result

	first, err := g.decideTurnOrder(ctx)
	if err != nil {
		return res, err
	}
	res.FirstMover = first

	res.UserDie, res.ComputerDie, err = g.selectDice(ctx, first)
	if err != nil {
		return res, err
	}

	for round := 1; round <= g.rounds; round++ {
		rr, err := g.playRound(ctx, round, first, res.UserDie, res.ComputerDie)
		if err != nil {
			return res, err
		}
		res.Rounds = append(res.Rounds, rr)
		switch rr.Outcome {
		case UserWins:
			res.UserWins++
		case ComputerWins:
			res.ComputerWins++
		default:
			res.Ties++
		}
	}
	g.logger.Info("game over", "outcome", res.Outcome().String(),
		"user_wins", res.UserWins, "computer_wins", res.ComputerWins, "ties", res.Ties)
	return res, nil
}

// decideTurnOrder runs a range 2 session. The user moves first when the
// combined result is zero, that is when its guess matches the secret value.
func (g *GameOrchestrator) decideTurnOrder(ctx context.Context) (Party, error) {
	f, err := g.runSession(ctx, fairrand.PurposeTurnOrder, 2, "turn order")
	if err != nil {
		return 0, err
	}
	first := Computer
	if f.Result == 0 {
		first = User
	}
	g.reporter.TurnOrder(first, f)
	g.logger.Debug("turn order decided", "first", first.String())
	return first, nil
}

func (g *GameOrchestrator) selectDice(ctx context.Context, first Party) (userDie, computerDie int, err error) {
	picker := first
	if g.firstPick == config.FirstPickLoser {
		picker = first.Other()
	}
	available := make([]int, g.set.Len())
	for i := range available {
		available[i] = i
	}
	userDie, computerDie = -1, -1
	for range 2 {
		var idx int
		if picker == User {
			idx, err = g.user.ChooseDie(ctx, g.set, slices.Clone(available))
			if err != nil {
				return 0, 0, err
			}
			if !slices.Contains(available, idx) {
				return 0, 0, fmt.Errorf("%w: die %d is not available", ErrInvalidSelection, idx)
			}
			userDie = idx
		} else {
			idx, err = g.computerPick(available, userDie)
			if err != nil {
				return 0, 0, err
			}
			computerDie = idx
		}
		available = slices.DeleteFunc(available, func(i int) bool { return i == idx })
		g.reporter.DieChosen(picker, idx, g.set.Die(idx))
		g.logger.Debug("die chosen", "party", picker.String(), "die", g.set.Die(idx).String())
		picker = picker.Other()
	}
	return userDie, computerDie, nil
}

// computerPick counters the user's die when it is known and otherwise picks
// uniformly.
func (g *GameOrchestrator) computerPick(available []int, userDie int) (int, error) {
	if userDie >= 0 {
		if best := g.matrix.BestCounter(userDie, available); best >= 0 {
			return best, nil
		}
	}
	i, err := g.sampler.Sample(len(available))
	if err != nil {
		return 0, fmt.Errorf("computer pick: %w", err)
	}
	return available[i], nil
}

func (g *GameOrchestrator) playRound(ctx context.Context, round int, first Party, userDie, computerDie int) (RoundResult, error) {
	rr := RoundResult{Round: round}
	for _, p := range []Party{first, first.Other()} {
		die := g.set.Die(computerDie)
		if p == User {
			die = g.set.Die(userDie)
		}
		label := fmt.Sprintf("round %d, %s roll", round, p)
		f, err := g.runSession(ctx, fairrand.PurposeRoll, die.Len(), label)
		if err != nil {
			return rr, err
		}
		face := die.Face(f.Result)
		if p == User {
			rr.UserFace = face
		} else {
			rr.ComputerFace = face
		}
		g.reporter.Rolled(round, p, face)
	}
	rr.Outcome = compareFaces(rr.UserFace, rr.ComputerFace)
	g.reporter.RoundOver(rr)
	return rr, nil
}

// runSession commits, collects the user contribution, reveals, verifies and
// records one session.
func (g *GameOrchestrator) runSession(ctx context.Context, purpose fairrand.Purpose, n int, label string) (fairrand.Finalized, error) {
	committed, err := fairrand.NewSession(g.sampler, purpose, n)
	if err != nil {
		return fairrand.Finalized{}, err
	}
	pub := committed.Commitment()
	g.reporter.Committed(pub, label)
	g.logger.Debug("session committed", "session", pub.SessionID, "purpose", string(purpose), "range", n, "digest", pub.Digest.String())

	received, err := g.collect(ctx, committed, label)
	if err != nil {
		committed.Discard()
		return fairrand.Finalized{}, err
	}

	f, err := received.Reveal().Finalize()
	if err != nil {
		if errors.Is(err, fairrand.ErrIntegrityViolation) {
			g.logger.Error("commitment does not match disclosure", "session", pub.SessionID, "error", err)
		}
		return fairrand.Finalized{}, err
	}
	if _, err := g.transcript.Append(f, label); err != nil {
		return fairrand.Finalized{}, fmt.Errorf("record session %s: %w", pub.SessionID, err)
	}
	g.reporter.Revealed(f, label)
	g.logger.Debug("session finalized", "session", pub.SessionID, "value", f.Value, "input", f.Input, "result", f.Result)
	return f, nil
}

// collect asks the user for a contribution until the session accepts one.
// A rejected input is handed back with the next request.
func (g *GameOrchestrator) collect(ctx context.Context, committed *fairrand.Committed, label string) (*fairrand.Received, error) {
	req := Request{Commitment: committed.Commitment(), Label: label}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		input, err := g.user.Contribute(ctx, req)
		if err != nil {
			return nil, err
		}
		received, err := committed.Receive(input)
		if errors.Is(err, fairrand.ErrOutOfRangeInput) {
			g.logger.Warn("contribution rejected", "session", req.Commitment.SessionID, "input", input)
			req.Rejected = err
			continue
		}
		return received, err
	}
}
