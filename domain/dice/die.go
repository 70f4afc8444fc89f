package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinDice is the smallest number of dice a set may hold.
const MinDice = 3

var ErrInvalidDiceConfiguration = errors.New("invalid dice configuration")

// Die is an immutable sequence of face values.
type Die struct {
	faces []int
}

// NewDie copies faces into a new Die.
func NewDie(faces []int) (Die, error) {
	if len(faces) == 0 {
		return Die{}, fmt.Errorf("%w: a die needs at least one face", ErrInvalidDiceConfiguration)
	}
	return Die{faces: append([]int(nil), faces...)}, nil
}

// ParseDie parses comma separated integers. When faces is positive the
// token must hold exactly that many values.
func ParseDie(token string, faces int) (Die, error) {
	parts := strings.Split(token, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Die{}, fmt.Errorf("%w: %q: face %q is not an integer", ErrInvalidDiceConfiguration, token, p)
		}
		values = append(values, v)
	}
	if faces > 0 && len(values) != faces {
		return Die{}, fmt.Errorf("%w: %q: expected %d faces, got %d", ErrInvalidDiceConfiguration, token, faces, len(values))
	}
	return NewDie(values)
}

// Len is the number of faces.
func (d Die) Len() int {
	return len(d.faces)
}

// Face returns the value of face i.
func (d Die) Face(i int) int {
	return d.faces[i]
}

// Faces returns a copy of the face values.
func (d Die) Faces() []int {
	return append([]int(nil), d.faces...)
}

func (d Die) String() string {
	s := make([]string, len(d.faces))
	for i, f := range d.faces {
		s[i] = strconv.Itoa(f)
	}
	return strings.Join(s, ",")
}

// DiceSet is an ordered collection of dice sharing one face count.
type DiceSet struct {
	dice  []Die
	faces int
}

// NewDiceSet checks that there are at least MinDice dice, all with the same
// face count.
func NewDiceSet(dice []Die) (DiceSet, error) {
	if len(dice) < MinDice {
		return DiceSet{}, fmt.Errorf("%w: at least %d dice are required, got %d", ErrInvalidDiceConfiguration, MinDice, len(dice))
	}
	faces := dice[0].Len()
	if faces == 0 {
		return DiceSet{}, fmt.Errorf("%w: die 1 has no faces", ErrInvalidDiceConfiguration)
	}
	for i, d := range dice {
		if d.Len() != faces {
			return DiceSet{}, fmt.Errorf("%w: die %d has %d faces, expected %d", ErrInvalidDiceConfiguration, i+1, d.Len(), faces)
		}
	}
	return DiceSet{dice: append([]Die(nil), dice...), faces: faces}, nil
}

// ParseDiceSet parses one die per token. A faces value of zero takes the
// face count of the first die. Every malformed token is reported.
func ParseDiceSet(tokens []string, faces int) (DiceSet, error) {
	if len(tokens) < MinDice {
		return DiceSet{}, fmt.Errorf("%w: at least %d dice are required, got %d", ErrInvalidDiceConfiguration, MinDice, len(tokens))
	}
	dice := make([]Die, 0, len(tokens))
	var errs []error
	for _, tok := range tokens {
		d, err := ParseDie(tok, faces)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if faces == 0 {
			faces = d.Len()
		}
		dice = append(dice, d)
	}
	if len(errs) > 0 {
		return DiceSet{}, errors.Join(errs...)
	}
	return NewDiceSet(dice)
}

// Len is the number of dice in the set.
func (s DiceSet) Len() int {
	return len(s.dice)
}

// Faces is the face count shared by every die.
func (s DiceSet) Faces() int {
	return s.faces
}

// Die returns the die at index i.
func (s DiceSet) Die(i int) Die {
	return s.dice[i]
}

// Dice returns a copy of the dice slice.
func (s DiceSet) Dice() []Die {
	return append([]Die(nil), s.dice...)
}
