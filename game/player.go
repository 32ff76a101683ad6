package game

// Player is one seated player. Seat fixes the start cell and goal edge;
// WallsRemaining only ever decreases.
type Player struct {
	ID             string
	Name           string
	Color          string
	Position       Position
	WallsRemaining int
	Seat           int
	Connected      bool
}

// Pawn colors by seat, clockwise from the bottom edge.
var seatColors = [4]string{"white", "red", "black", "blue"}
