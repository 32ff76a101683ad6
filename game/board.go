package game

// BoardSize is the number of pawn cells along one edge of the board.
const BoardSize = 9

// WallGridSize is the number of wall anchor points along one edge. Walls sit
// in the gaps between pawn cells, so the wall grid is one smaller than the
// pawn grid.
const WallGridSize = BoardSize - 1

// Position is a pawn-space coordinate (0 <= X,Y < BoardSize) or, for walls,
// a wall-space coordinate (0 <= X,Y < WallGridSize).
type Position struct {
	X int
	Y int
}

// InBounds reports whether p is a valid pawn cell.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// inWallBounds reports whether p is a valid wall anchor.
func (p Position) inWallBounds() bool {
	return p.X >= 0 && p.X < WallGridSize && p.Y >= 0 && p.Y < WallGridSize
}

// The four orthogonal step directions, in the order destinations are
// generated: north (+Y), east (+X), south (-Y), west (-X).
var directions = [4]Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// sideSteps returns the two directions perpendicular to d, used for the
// diagonal jump fallback. West-or-north first, matching the direction order
// above.
func sideSteps(d Position) [2]Position {
	if d.X == 0 {
		return [2]Position{{-1, 0}, {1, 0}}
	}
	return [2]Position{{0, -1}, {0, 1}}
}

// seatInfo fixes a seat's start cell and goal line. A goal is one full edge:
// goalAxis selects which coordinate must reach goalLine (0 means Y, 1 means
// X).
type seatInfo struct {
	start    Position
	goalAxis int
	goalLine int
}

// Seat layout per player count. Two players face each other across the
// board; four players sit clockwise at the edge midpoints, each racing to
// the opposite edge.
var seatsByCount = map[int][]seatInfo{
	2: {
		{start: Position{4, 0}, goalAxis: 0, goalLine: BoardSize - 1},
		{start: Position{4, BoardSize - 1}, goalAxis: 0, goalLine: 0},
	},
	4: {
		{start: Position{4, 0}, goalAxis: 0, goalLine: BoardSize - 1},
		{start: Position{BoardSize - 1, 4}, goalAxis: 1, goalLine: 0},
		{start: Position{4, BoardSize - 1}, goalAxis: 0, goalLine: 0},
		{start: Position{0, 4}, goalAxis: 1, goalLine: BoardSize - 1},
	},
}

// wallBudgets is the per-player wall allowance by player count.
var wallBudgets = map[int]int{2: 10, 4: 5}

func seatTable(maxPlayers int) []seatInfo {
	seats, ok := seatsByCount[maxPlayers]
	if !ok {
		panic("unsupported player count")
	}
	return seats
}

// StartPosition returns the fixed start cell for a seat.
func StartPosition(seat, maxPlayers int) Position {
	return seatTable(maxPlayers)[seat].start
}

// AtGoal reports whether pos is on the goal edge for a seat.
func AtGoal(pos Position, seat, maxPlayers int) bool {
	info := seatTable(maxPlayers)[seat]
	if info.goalAxis == 0 {
		return pos.Y == info.goalLine
	}
	return pos.X == info.goalLine
}

// WallBudget returns the number of walls each player starts with.
func WallBudget(maxPlayers int) int {
	budget, ok := wallBudgets[maxPlayers]
	if !ok {
		panic("unsupported player count")
	}
	return budget
}
