package agent

import (
	"pursuit/grid"

	"golang.org/x/exp/slices"
)

// PredictOpponentMove forecasts the next move of an opponent that flees
// directly away from the observer. Vertical escape is tried before
// horizontal, then the remaining directions in fixed order, then Stay.
func PredictOpponentMove(observer, opponent grid.Position, g grid.Grid) grid.Move {
	rowDiff := opponent.Row - observer.Row
	colDiff := opponent.Col - observer.Col

	preferred := make([]grid.Move, 0, 2)
	if rowDiff > 0 {
		preferred = append(preferred, grid.Down)
	} else if rowDiff < 0 {
		preferred = append(preferred, grid.Up)
	}
	if colDiff > 0 {
		preferred = append(preferred, grid.Right)
	} else if colDiff < 0 {
		preferred = append(preferred, grid.Left)
	}

	for _, m := range preferred {
		if grid.IsValidPosition(grid.ApplyMove(opponent, m), g) {
			return m
		}
	}

	for _, m := range grid.Moves {
		if slices.Contains(preferred, m) {
			continue
		}
		if grid.IsValidPosition(grid.ApplyMove(opponent, m), g) {
			return m
		}
	}

	return grid.Stay
}

// PredictOpponentPosition applies the predicted move to the opponent's position.
func PredictOpponentPosition(observer, opponent grid.Position, g grid.Grid) grid.Position {
	return grid.ApplyMove(opponent, PredictOpponentMove(observer, opponent, g))
}
