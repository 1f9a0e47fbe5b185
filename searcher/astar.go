package searcher

import (
	"container/heap"

	"pursuit/grid"
)

// entry is a pending frontier item. seq increases with every push so that
// entries with equal f are popped in insertion order.
type entry struct {
	f    int
	g    int
	seq  int
	pos  grid.Position
	from step
}

type frontier []*entry

func (pq frontier) Len() int { return len(pq) }
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontier) Push(x any)   { *pq = append(*pq, x.(*entry)) }
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// AStar returns a shortest path from start to goal using the Manhattan
// distance heuristic. A position is closed only when popped, so the frontier
// may hold several entries for it; stale ones are skipped.
func (s *Searcher) AStar(start, goal grid.Position, g grid.Grid) Path {
	seq := 0
	pq := &frontier{{f: grid.ManhattanDistance(start, goal), pos: start}}
	parents := map[grid.Position]step{}
	closed := map[grid.Position]bool{}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*entry)

		if current.pos == goal {
			if current.pos != start {
				parents[goal] = current.from
			}
			path := reconstruct(parents, start, goal)
			s.metrics.AddSearch(true)
			return path
		}
		if closed[current.pos] {
			continue
		}
		closed[current.pos] = true
		if current.pos != start {
			parents[current.pos] = current.from
		}
		s.metrics.AddExpansion()

		for _, n := range grid.Neighbors(current.pos, g) {
			if closed[n.Pos] {
				continue
			}
			seq++
			cost := current.g + 1
			heap.Push(pq, &entry{
				f:    cost + grid.ManhattanDistance(n.Pos, goal),
				g:    cost,
				seq:  seq,
				pos:  n.Pos,
				from: step{from: current.pos, move: n.Move},
			})
		}
	}

	s.metrics.AddSearch(false)
	return Path{}
}
