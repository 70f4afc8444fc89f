package dice

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Cell is the outcome count of the row die against the column die.
type Cell struct {
	Wins  int
	Ties  int
	Total int
	// Defined is false on the diagonal: a die never plays itself.
	Defined bool
}

// Percentage is 100 * Wins / Total rounded to two decimal places.
func (c Cell) Percentage() decimal.Decimal {
	if c.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(c.Wins)).Mul(hundred).Div(decimal.NewFromInt(int64(c.Total))).Round(2)
}

// Probability is Wins / Total.
func (c Cell) Probability() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Total)
}

// Matrix holds a Cell for every ordered pair of dice.
type Matrix struct {
	cells [][]Cell
}

// ComputeMatrix enumerates the face pairs of every ordered pair of dice.
func ComputeMatrix(dice []Die) Matrix {
	n := len(dice)
	cells := make([][]Cell, n)
	for i := range cells {
		cells[i] = make([]Cell, n)
		for j := range cells[i] {
			if i == j {
				continue
			}
			cells[i][j] = Compare(dice[i], dice[j])
		}
	}
	return Matrix{cells: cells}
}

// Compare counts the face pairs where a rolls higher than b, and the ties.
func Compare(a, b Die) Cell {
	c := Cell{Total: a.Len() * b.Len(), Defined: true}
	for _, x := range a.faces {
		for _, y := range b.faces {
			switch {
			case x > y:
				c.Wins++
			case x == y:
				c.Ties++
			}
		}
	}
	return c
}

func (m Matrix) Size() int {
	return len(m.cells)
}

// Cell returns the row i, column j entry. ok is false on the diagonal and
// outside the matrix.
func (m Matrix) Cell(i, j int) (Cell, bool) {
	if i < 0 || j < 0 || i >= len(m.cells) || j >= len(m.cells) {
		return Cell{}, false
	}
	c := m.cells[i][j]
	return c, c.Defined
}

// BestCounter returns the candidate that wins most often against die
// opponent, or -1 if no candidate other than opponent is given. Ties are
// broken by the lower index.
func (m Matrix) BestCounter(opponent int, candidates []int) int {
	best := -1
	bestWins := -1
	for _, c := range candidates {
		cell, ok := m.Cell(c, opponent)
		if !ok {
			continue
		}
		if cell.Wins > bestWins {
			best, bestWins = c, cell.Wins
		}
	}
	return best
}

// Matrix computes the probability matrix of the set.
func (s DiceSet) Matrix() Matrix {
	return ComputeMatrix(s.dice)
}
