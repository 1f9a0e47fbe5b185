package experiments

import (
	"errors"
	"fmt"

	"pursuit/grid"
	"pursuit/searcher"

	"golang.org/x/exp/rand"
)

var ErrNoRoom = errors.New("no room for both agents")

const maxAttempts = 100

// GenerateLayout builds a random layout with walls placed with probability
// density. The seeker starts on a random free cell and the hider on a cell
// from the far half of the seeker's reachable area. The same seed always
// gives the same layout.
func GenerateLayout(rows, cols int, density float64, seed uint64) (grid.Layout, error) {
	if rows <= 0 || cols <= 0 {
		return grid.Layout{}, fmt.Errorf("%w: %dx%d grid", ErrNoRoom, rows, cols)
	}
	r := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		g := grid.NewGrid(rows, cols)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if r.Float64() < density {
					g.Set(grid.Position{Row: row, Col: col}, grid.Wall)
				}
			}
		}

		free := g.FreeCells()
		if len(free) < 2 {
			continue
		}
		seeker := free[r.Intn(len(free))]

		// Cells come in BFS order so the back half is the far half
		_, order := searcher.Distances(seeker, g)
		if len(order) < 2 {
			continue
		}
		far := order[len(order)/2:]
		hider := far[r.Intn(len(far))]

		return grid.Layout{Grid: g, Seeker: seeker, Hider: hider}, nil
	}

	return grid.Layout{}, fmt.Errorf("%w: gave up after %d attempts at density %v", ErrNoRoom, maxAttempts, density)
}
