package searcher

import "pursuit/grid"

// BFS returns a shortest path from start to goal over 4-directional
// adjacency. Positions are marked visited when enqueued. The path is empty
// when goal is unreachable or equal to start.
func (s *Searcher) BFS(start, goal grid.Position, g grid.Grid) Path {
	parents := map[grid.Position]step{}
	visited := map[grid.Position]bool{start: true}
	queue := []grid.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			path := reconstruct(parents, start, goal)
			s.metrics.AddSearch(true)
			return path
		}
		s.metrics.AddExpansion()

		for _, n := range grid.Neighbors(current, g) {
			if visited[n.Pos] {
				continue
			}
			visited[n.Pos] = true
			parents[n.Pos] = step{from: current, move: n.Move}
			queue = append(queue, n.Pos)
		}
	}

	s.metrics.AddSearch(false)
	return Path{}
}

// Distances runs a full BFS from start and returns the distance of every
// reachable cell (start included, at 0) along with the cells in the order
// they were dequeued.
func (s *Searcher) Distances(start grid.Position, g grid.Grid) (map[grid.Position]int, []grid.Position) {
	dist := map[grid.Position]int{start: 0}
	order := []grid.Position{}
	queue := []grid.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)
		s.metrics.AddExpansion()

		for _, n := range grid.Neighbors(current, g) {
			if _, seen := dist[n.Pos]; seen {
				continue
			}
			dist[n.Pos] = dist[current] + 1
			queue = append(queue, n.Pos)
		}
	}

	s.metrics.AddSearch(true)
	return dist, order
}
