package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/fair-dice/application"
	"github.com/luca-patrignani/fair-dice/config"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fairrand"
)

const (
	exitOK        = 0
	exitError     = 1
	exitUsage     = 2
	exitIntegrity = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitUsage
	}
	logger := newLogger(cfg.LogLevel)

	if len(args) > 0 && args[0] == "verify" {
		if err := runVerify(args[1:]); err != nil {
			pterm.Error.Println(err.Error())
			return exitCode(err)
		}
		return exitOK
	}

	set, err := dice.ParseDiceSet(args, cfg.Faces)
	if err != nil {
		pterm.Error.Println(err.Error())
		printUsage()
		return exitUsage
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fair ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Dice", pterm.FgRed.ToStyle()),
	).Render()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	orchestrator := application.NewGameOrchestrator(
		set,
		newSampler(cfg.Entropy),
		&terminalUser{matrix: set.Matrix(), set: set},
		application.WithReporter(consoleReporter{set: set}),
		application.WithLogger(logger),
		application.WithConfig(cfg),
	)
	res, err := orchestrator.Play(ctx)
	if err != nil {
		if errors.Is(err, application.ErrAborted) {
			pterm.Info.Println("Game aborted, no secret was revealed for the pending session.")
			return exitOK
		}
		logger.Error("game terminated", "error", err.Error())
		return exitCode(err)
	}

	pterm.Println(summaryPanel(res, set))
	if cfg.Transcript {
		renderTranscript(orchestrator.Transcript().Blocks())
		if err := orchestrator.Transcript().Verify(); err != nil {
			logger.Error("transcript verification failed", "error", err.Error())
			return exitCode(err)
		}
		pterm.Success.Println("Every commitment of the transcript verifies.")
	}
	return exitOK
}

func newLogger(level string) *slog.Logger {
	l := pterm.DefaultLogger.WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(l))
}

func ptermLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	}
	return pterm.LogLevelInfo
}

func newSampler(e config.Entropy) *fairrand.Sampler {
	if e == config.EntropyKyber {
		return fairrand.NewSuiteSampler()
	}
	return fairrand.NewCryptoSampler()
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, fairrand.ErrIntegrityViolation):
		return exitIntegrity
	case errors.Is(err, dice.ErrInvalidDiceConfiguration):
		return exitUsage
	}
	return exitError
}

// runVerify checks a disclosed key and value against a published digest:
// verify <key> <value> <digest>.
func runVerify(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: verify <key> <value> <digest>")
	}
	key, err := fairrand.ParseKey(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("value %q is not an integer", args[1])
	}
	digest, err := fairrand.ParseDigest(args[2])
	if err != nil {
		return err
	}
	if !fairrand.Verify(key, value, digest) {
		return fmt.Errorf("%w: HMAC-SHA3-256(%s, %d) differs from %s", fairrand.ErrIntegrityViolation, key, value, digest)
	}
	pterm.Success.Printfln("HMAC-SHA3-256(key, %d) matches %s", value, digest)
	return nil
}

func printUsage() {
	pterm.Info.Println("usage: fair-dice <die> <die> <die> [<die>...]\n" +
		"       fair-dice verify <key> <value> <digest>\n" +
		"each die is a comma separated list of integer faces, all dice with the same face count\n" +
		"example: fair-dice 2,2,4,4,9,9 1,1,6,6,8,8 3,3,5,5,7,7")
}
