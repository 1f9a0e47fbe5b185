package grid

import "fmt"

// Move is one of the five actions an agent can take in a turn.
type Move int

const (
	Stay Move = iota
	Up
	Down
	Left
	Right
)

// Moves lists the directional moves in the fixed order used for tie-breaking.
var Moves = []Move{Up, Down, Left, Right}

// AllMoves is Moves followed by Stay.
var AllMoves = []Move{Up, Down, Left, Right, Stay}

var deltas = [...]Position{
	Stay:  {0, 0},
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var names = [...]string{
	Stay:  "STAY",
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

// Delta returns the coordinate offset of the move.
func (m Move) Delta() Position {
	if m < Stay || m > Right {
		return Position{}
	}
	return deltas[m]
}

func (m Move) String() string {
	if m < Stay || m > Right {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return names[m]
}
