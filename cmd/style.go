package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/fair-dice/application"
	"github.com/luca-patrignani/fair-dice/domain/dice"
	"github.com/luca-patrignani/fair-dice/domain/fairrand"
	"github.com/luca-patrignani/fair-dice/ledger"
)

// consoleReporter prints the public events of the game.
type consoleReporter struct {
	set dice.DiceSet
}

func (r consoleReporter) Committed(c fairrand.Commitment, label string) {
	pterm.DefaultSection.Println(label)
	pterm.Info.Printfln("I selected a random value in the range 0..%d (HMAC=%s).", c.Range-1, pterm.LightYellow(c.Digest.String()))
}

func (r consoleReporter) Revealed(f fairrand.Finalized, label string) {
	pterm.Info.Printfln("My number is %d (KEY=%s).", f.Value, pterm.LightYellow(f.Key.String()))
	if f.Purpose == fairrand.PurposeRoll {
		pterm.Info.Printfln("The result is %d + %d = %d (mod %d).", f.Value, f.Input, f.Result, f.Range)
	}
}

func (r consoleReporter) TurnOrder(first application.Party, f fairrand.Finalized) {
	if first == application.User {
		pterm.Success.Printfln("You guessed %d, you make the first move.", f.Input)
		return
	}
	pterm.Info.Printfln("You guessed %d, I make the first move.", f.Input)
}

func (r consoleReporter) DieChosen(p application.Party, index int, d dice.Die) {
	who := "You choose"
	if p == application.Computer {
		who = "I choose"
	}
	pterm.Info.Printfln("%s the [%s] dice.", who, pterm.LightCyan(d.String()))
}

func (r consoleReporter) Rolled(round int, p application.Party, face int) {
	who := "Your"
	if p == application.Computer {
		who = "My"
	}
	pterm.Info.Printfln("%s roll result is %s.", who, pterm.LightCyan(strconv.Itoa(face)))
}

func (r consoleReporter) RoundOver(rr application.RoundResult) {
	switch rr.Outcome {
	case application.UserWins:
		pterm.Success.Printfln("You win round %d (%d > %d)!", rr.Round, rr.UserFace, rr.ComputerFace)
	case application.ComputerWins:
		pterm.Info.Printfln("I win round %d (%d > %d)!", rr.Round, rr.ComputerFace, rr.UserFace)
	default:
		pterm.Info.Printfln("Round %d is a tie (%d = %d).", rr.Round, rr.UserFace, rr.ComputerFace)
	}
}

// probabilityTable lays out the probability of the row die beating the
// column die.
func probabilityTable(set dice.DiceSet, m dice.Matrix) pterm.TableData {
	header := []string{"User dice v"}
	for i := 0; i < set.Len(); i++ {
		header = append(header, set.Die(i).String())
	}
	data := pterm.TableData{header}
	for i := 0; i < set.Len(); i++ {
		row := []string{set.Die(i).String()}
		for j := 0; j < set.Len(); j++ {
			c, ok := m.Cell(i, j)
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, c.Percentage().StringFixed(2)+"%")
		}
		data = append(data, row)
	}
	return data
}

func renderProbabilityTable(set dice.DiceSet, m dice.Matrix) {
	pterm.DefaultSection.Println("Probability of the win for the user")
	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(probabilityTable(set, m)).Render()
}

func transcriptTable(blocks []ledger.Block) pterm.TableData {
	data := pterm.TableData{{"#", "Decision", "Commitment", "Key", "Value", "Input", "Result"}}
	for _, b := range blocks[1:] {
		r := b.Record
		data = append(data, []string{
			strconv.Itoa(b.Index),
			r.Label,
			r.Commitment,
			r.Key,
			strconv.Itoa(r.Value),
			strconv.Itoa(r.Input),
			strconv.Itoa(r.Result),
		})
	}
	return data
}

func renderTranscript(blocks []ledger.Block) {
	pterm.DefaultSection.Println("Transcript")
	pterm.DefaultTable.WithHasHeader().WithData(transcriptTable(blocks)).Render()
}

func summaryPanel(res application.Result, set dice.DiceSet) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var title string
	switch res.Outcome() {
	case application.UserWins:
		title = pterm.LightGreen("|YOU WIN|")
	case application.ComputerWins:
		title = pterm.LightRed("|I WIN|")
	default:
		title = pterm.LightYellow("|TIE|")
	}
	return pbox.WithTitle(title).WithTitleTopCenter().Sprintf(
		"Your dice: %s\nMy dice: %s\nRounds won by you: %d\nRounds won by me: %d\nTies: %d",
		set.Die(res.UserDie), set.Die(res.ComputerDie), res.UserWins, res.ComputerWins, res.Ties)
}
