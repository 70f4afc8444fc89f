package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fair-dice/application"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fairrand"
)

const (
	optionHelp = "? - help"
	optionExit = "X - exit"
)

type choiceKind int

const (
	choiceValue choiceKind = iota
	choiceHelp
	choiceExit
)

// terminalUser collects the user's inputs with interactive pterm prompts.
type terminalUser struct {
	matrix dice.Matrix
	set    dice.DiceSet
}

func (u *terminalUser) Contribute(ctx context.Context, req application.Request) (int, error) {
	n := req.Commitment.Range
	text := fmt.Sprintf("%s: add your number modulo %d", req.Label, n)
	if req.Commitment.Purpose == fairrand.PurposeTurnOrder {
		text = "Try to guess my selection"
	}
	if req.Rejected != nil {
		pterm.Warning.Println(req.Rejected.Error())
	}
	options := make([]string, 0, n+2)
	for i := 0; i < n; i++ {
		options = append(options, strconv.Itoa(i))
	}
	return u.prompt(ctx, text, append(options, optionExit, optionHelp), n)
}

func (u *terminalUser) ChooseDie(ctx context.Context, set dice.DiceSet, available []int) (int, error) {
	u.set = set
	options := make([]string, 0, len(available)+2)
	for _, i := range available {
		options = append(options, dieOption(i, set.Die(i)))
	}
	options = append(options, optionExit, optionHelp)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Choose your dice").WithOptions(options).Show()
		if err != nil {
			return 0, err
		}
		kind, idx, err := parseChoice(selected, set.Len())
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		switch kind {
		case choiceExit:
			return 0, application.ErrAborted
		case choiceHelp:
			renderProbabilityTable(set, u.matrix)
			continue
		}
		return idx, nil
	}
}

func (u *terminalUser) prompt(ctx context.Context, text string, options []string, n int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		selected, err := pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).Show()
		if err != nil {
			return 0, err
		}
		kind, v, err := parseChoice(selected, n)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		switch kind {
		case choiceExit:
			return 0, application.ErrAborted
		case choiceHelp:
			renderProbabilityTable(u.set, u.matrix)
			continue
		}
		return v, nil
	}
}

func dieOption(i int, d dice.Die) string {
	return fmt.Sprintf("%d - %s", i, d)
}

// parseChoice maps a selected option back to a value in [0, n), help or exit.
func parseChoice(option string, n int) (choiceKind, int, error) {
	switch option {
	case optionHelp:
		return choiceHelp, 0, nil
	case optionExit:
		return choiceExit, 0, nil
	}
	var v int
	if _, err := fmt.Sscanf(option, "%d", &v); err != nil {
		return 0, 0, fmt.Errorf("%q is not a valid option", option)
	}
	if v < 0 || v >= n {
		return 0, 0, fmt.Errorf("%d is not in [0, %d)", v, n)
	}
	return choiceValue, v, nil
}
