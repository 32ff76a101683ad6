package game

// Orientation is the axis a wall's two-cell segment runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Wall is a placed wall. Walls are append-only: once placed they never move.
//
// The wall-space anchor (X, Y) addresses the junction between four pawn
// cells. The segments each wall blocks:
//
//	Horizontal at (x, y) blocks the vertical steps
//	    (x,   y) <-> (x,   y+1)
//	    (x+1, y) <-> (x+1, y+1)
//	Vertical at (x, y) blocks the horizontal steps
//	    (x, y)   <-> (x+1, y)
//	    (x, y+1) <-> (x+1, y+1)
type Wall struct {
	ID          string
	Position    Position
	Orientation Orientation
	Owner       string
}

// blocks reports whether the wall blocks a single step between two
// orthogonally adjacent pawn cells.
func (w Wall) blocks(from, to Position) bool {
	if from.X == to.X {
		// Vertical step, only crossed by horizontal walls.
		if w.Orientation != Horizontal {
			return false
		}
		low := from.Y
		if to.Y < low {
			low = to.Y
		}
		return w.Position.Y == low && (w.Position.X == from.X || w.Position.X == from.X-1)
	}
	// Horizontal step, only crossed by vertical walls.
	if w.Orientation != Vertical {
		return false
	}
	low := from.X
	if to.X < low {
		low = to.X
	}
	return w.Position.X == low && (w.Position.Y == from.Y || w.Position.Y == from.Y-1)
}

// stepBlocked reports whether any wall in walls blocks the step from one
// cell to an orthogonally adjacent cell.
func stepBlocked(walls []Wall, from, to Position) bool {
	for _, w := range walls {
		if w.blocks(from, to) {
			return true
		}
	}
	return false
}

// IsWallLegal reports whether playerID may place a wall at pos with the
// given orientation. All placement rules are folded into one boolean: bounds,
// remaining budget, duplicate/overlap/crossing against placed walls, and the
// reachability rule that no player may be cut off from their goal.
func IsWallLegal(gs *GameState, pos Position, o Orientation, playerID string) bool {
	if o != Horizontal && o != Vertical {
		return false
	}
	if !pos.inWallBounds() {
		return false
	}
	mover, ok := gs.playerByID(playerID)
	if !ok || mover.WallsRemaining <= 0 {
		return false
	}
	for _, w := range gs.Walls {
		if w.Position == pos {
			// Same anchor: either an exact duplicate or a
			// perpendicular wall crossing the same junction.
			return false
		}
		if w.Orientation != o {
			continue
		}
		// Same orientation one anchor over along the wall's own length
		// would overlap a segment.
		if o == Horizontal && w.Position.Y == pos.Y && abs(w.Position.X-pos.X) == 1 {
			return false
		}
		if o == Vertical && w.Position.X == pos.X && abs(w.Position.Y-pos.Y) == 1 {
			return false
		}
	}

	// The candidate passes the cheap checks; now every contending player
	// must still reach their goal with the hypothetical wall in place.
	hypothetical := make([]Wall, len(gs.Walls), len(gs.Walls)+1)
	copy(hypothetical, gs.Walls)
	hypothetical = append(hypothetical, Wall{Position: pos, Orientation: o, Owner: playerID})
	for i := range gs.Players {
		p := &gs.Players[i]
		if !p.Connected {
			continue
		}
		if !HasPathToGoal(p.Position, p.Seat, gs.MaxPlayers, hypothetical) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
