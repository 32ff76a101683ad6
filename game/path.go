package game

// HasPathToGoal reports whether a pawn at from can still reach the goal edge
// for its seat given the wall set. Just BFS over the pawn grid with edges
// pruned by walls; terminates as soon as any goal cell is reached.
//
// The wall set may be hypothetical (candidate placement included), so this
// must not read any committed state and must stay cheap: it runs once per
// player for every candidate wall while enumerating legal placements.
func HasPathToGoal(from Position, seat, maxPlayers int, walls []Wall) bool {
	if AtGoal(from, seat, maxPlayers) {
		return true
	}

	var visited [BoardSize * BoardSize]bool
	queue := make([]Position, 0, BoardSize*BoardSize)
	queue = append(queue, from)
	visited[from.Y*BoardSize+from.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range directions {
			next := Position{cur.X + d.X, cur.Y + d.Y}
			if !next.InBounds() {
				continue
			}
			idx := next.Y*BoardSize + next.X
			if visited[idx] {
				continue
			}
			if stepBlocked(walls, cur, next) {
				continue
			}
			if AtGoal(next, seat, maxPlayers) {
				return true
			}
			visited[idx] = true
			queue = append(queue, next)
		}
	}
	return false
}
