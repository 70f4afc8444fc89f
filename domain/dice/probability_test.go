package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, tokens ...string) DiceSet {
	t.Helper()
	s, err := ParseDiceSet(tokens, 0)
	require.NoError(t, err)
	return s
}

func TestCompareKnownPair(t *testing.T) {
	a, err := ParseDie("2,2,4,4,9,9", 6)
	require.NoError(t, err)
	b, err := ParseDie("1,1,6,6,8,8", 6)
	require.NoError(t, err)

	c := Compare(a, b)
	assert.Equal(t, 20, c.Wins)
	assert.Equal(t, 36, c.Total)
	assert.Equal(t, 0, c.Ties)
	assert.Equal(t, "55.56", c.Percentage().String())
}

func TestMatrixDiagonalUndefined(t *testing.T) {
	m := mustSet(t, "2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7").Matrix()
	require.Equal(t, 3, m.Size())
	for i := 0; i < 3; i++ {
		_, ok := m.Cell(i, i)
		assert.False(t, ok)
	}
	_, ok := m.Cell(0, 3)
	assert.False(t, ok)
	_, ok = m.Cell(-1, 0)
	assert.False(t, ok)
}

func TestMatrixComplement(t *testing.T) {
	sets := [][]string{
		{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"},
		{"1,1,1,1,1,1", "1,1,1,1,1,1", "1,2,3,4,5,6"},
		{"-1,0,1", "0,0,0", "5,-5,0", "2,2,2"},
		{"7", "3", "7"},
	}
	for _, tokens := range sets {
		s := mustSet(t, tokens...)
		m := s.Matrix()
		f2 := s.Faces() * s.Faces()
		for i := 0; i < s.Len(); i++ {
			for j := 0; j < s.Len(); j++ {
				if i == j {
					continue
				}
				ij, ok := m.Cell(i, j)
				require.True(t, ok)
				ji, _ := m.Cell(j, i)
				assert.Equal(t, ij.Ties, ji.Ties)
				assert.Equal(t, f2, ij.Wins+ji.Wins+ij.Ties, "dice %v", tokens)
				assert.LessOrEqual(t, ij.Probability()+ji.Probability(), 1.0)
			}
		}
	}
}

func TestNonTransitiveSet(t *testing.T) {
	m := mustSet(t, "2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7").Matrix()
	c01, _ := m.Cell(0, 1)
	c12, _ := m.Cell(1, 2)
	c20, _ := m.Cell(2, 0)
	assert.Greater(t, c01.Probability(), 0.5)
	assert.Greater(t, c12.Probability(), 0.5)
	assert.Greater(t, c20.Probability(), 0.5)
}

func TestBestCounter(t *testing.T) {
	m := mustSet(t, "2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7").Matrix()
	assert.Equal(t, 2, m.BestCounter(0, []int{1, 2}))
	assert.Equal(t, 0, m.BestCounter(1, []int{0, 2}))
	assert.Equal(t, 1, m.BestCounter(2, []int{0, 1}))
	assert.Equal(t, -1, m.BestCounter(0, []int{0}))
	assert.Equal(t, -1, m.BestCounter(0, nil))
}

func TestCellPercentageZeroTotal(t *testing.T) {
	assert.True(t, Cell{}.Percentage().IsZero())
	assert.Equal(t, 0.0, Cell{}.Probability())
}
