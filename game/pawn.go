package game

import "golang.org/x/exp/slices"

// ValidPawnDestinations returns every cell the player's pawn may move to,
// including jumps over adjacent pawns and the diagonal side-steps offered
// when a straight jump is unavailable. Destinations are generated in the
// fixed north, east, south, west direction order.
func ValidPawnDestinations(gs *GameState, playerID string) []Position {
	mover, ok := gs.playerByID(playerID)
	if !ok {
		return nil
	}

	occupied := func(p Position) bool {
		for i := range gs.Players {
			if gs.Players[i].ID != playerID && gs.Players[i].Position == p {
				return true
			}
		}
		return false
	}

	var dests []Position
	cur := mover.Position
	for _, d := range directions {
		next := Position{cur.X + d.X, cur.Y + d.Y}
		if !next.InBounds() || stepBlocked(gs.Walls, cur, next) {
			continue
		}
		if !occupied(next) {
			dests = append(dests, next)
			continue
		}

		// Neighbor holds another pawn: jump straight over it if the far
		// cell is open, otherwise step diagonally to either side of it.
		over := Position{next.X + d.X, next.Y + d.Y}
		if over.InBounds() && !stepBlocked(gs.Walls, next, over) && !occupied(over) {
			dests = append(dests, over)
			continue
		}
		for _, s := range sideSteps(d) {
			side := Position{next.X + s.X, next.Y + s.Y}
			if !side.InBounds() || stepBlocked(gs.Walls, next, side) || occupied(side) {
				continue
			}
			if !slices.Contains(dests, side) {
				dests = append(dests, side)
			}
		}
	}
	return dests
}

// IsPawnMoveLegal reports whether moving playerID's pawn from from to to is
// legal in the given state.
func IsPawnMoveLegal(gs *GameState, from, to Position, playerID string) bool {
	mover, ok := gs.playerByID(playerID)
	if !ok || mover.Position != from {
		return false
	}
	return slices.Contains(ValidPawnDestinations(gs, playerID), to)
}
