package game

import "time"

// Move is a candidate move submitted for validation. Concrete types are
// PawnMove and WallMove; ValidateMove and ApplyMove switch exhaustively over
// them.
type Move interface {
	Mover() string
}

// PawnMove moves the player's pawn from From to To.
type PawnMove struct {
	PlayerID string
	From     Position
	To       Position
}

func (m PawnMove) Mover() string { return m.PlayerID }

// WallMove places a wall anchored at Position (wall-space) with the given
// orientation.
type WallMove struct {
	PlayerID    string
	Position    Position
	Orientation Orientation
}

func (m WallMove) Mover() string { return m.PlayerID }

// Record is a committed history entry: the move plus the id and timestamp it
// was stamped with when applied.
type Record struct {
	ID       string
	PlayedAt time.Time
	Move     Move
}
