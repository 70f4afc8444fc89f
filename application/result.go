package application

import "fmt"

// Party is one side of the game.
type Party int

const (
	User Party = iota
	Computer
)

func (p Party) String() string {
	switch p {
	case User:
		return "user"
	case Computer:
		return "computer"
	}
	return fmt.Sprintf("party(%d)", int(p))
}

// Other returns the opponent of p.
func (p Party) Other() Party {
	if p == User {
		return Computer
	}
	return User
}

// Outcome is the result of a round or of a whole game.
type Outcome int

const (
	Tie Outcome = iota
	UserWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case UserWins:
		return "user wins"
	case ComputerWins:
		return "computer wins"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func compareFaces(user, computer int) Outcome {
	switch {
	case user > computer:
		return UserWins
	case computer > user:
		return ComputerWins
	}
	return Tie
}

// RoundResult holds the faces rolled in one round.
type RoundResult struct {
	Round        int
	UserFace     int
	ComputerFace int
	Outcome      Outcome
}

// Result summarises a finished game. UserDie and ComputerDie are indices
// into the dice set.
type Result struct {
	FirstMover   Party
	UserDie      int
	ComputerDie  int
	Rounds       []RoundResult
	UserWins     int
	ComputerWins int
	Ties         int
}

// Outcome compares the number of rounds each party won.
func (r Result) Outcome() Outcome {
	return compareFaces(r.UserWins, r.ComputerWins)
}
