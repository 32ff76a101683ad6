package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle phase of a game.
type Status int

const (
	Waiting Status = iota
	Playing
	Finished
)

type StateHash uint64

// GameState is the full state of one game. Every operation that changes a
// game returns a fresh GameState value; a caller holding an older state never
// observes it change underfoot.
type GameState struct {
	ID         string
	Players    []Player // seat order, fixed at creation
	Walls      []Wall
	Current    int // index into Players of the seat to move
	Status     Status
	History    []Record
	WinnerID   string
	MaxPlayers int
	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewGame creates a game with the given players seated in order. Games start
// directly in Playing: seat assignment, start positions, and full wall
// budgets are all fixed here.
func NewGame(playerIDs []string, maxPlayers int) (*GameState, error) {
	if maxPlayers != 2 && maxPlayers != 4 {
		return nil, fmt.Errorf("unsupported player count: %d", maxPlayers)
	}
	if len(playerIDs) != maxPlayers {
		return nil, fmt.Errorf("need %d players, got %d", maxPlayers, len(playerIDs))
	}
	for i, id := range playerIDs {
		for _, other := range playerIDs[:i] {
			if id == other {
				return nil, fmt.Errorf("duplicate player id: %s", id)
			}
		}
	}

	now := time.Now()
	gs := &GameState{
		ID:         uuid.NewString(),
		Players:    make([]Player, len(playerIDs)),
		Current:    0,
		Status:     Playing,
		MaxPlayers: maxPlayers,
		CreatedAt:  now,
		StartedAt:  now,
	}
	budget := WallBudget(maxPlayers)
	for seat, id := range playerIDs {
		gs.Players[seat] = Player{
			ID:             id,
			Name:           fmt.Sprintf("Player%d", seat+1),
			Color:          seatColors[seat],
			Position:       StartPosition(seat, maxPlayers),
			WallsRemaining: budget,
			Seat:           seat,
			Connected:      true,
		}
	}
	return gs, nil
}

// Copy returns a deep copy of the state. Records hold immutable move values,
// so copying the slice headers is enough for history.
func (gs *GameState) Copy() *GameState {
	playersCopy := make([]Player, len(gs.Players))
	copy(playersCopy, gs.Players)

	wallsCopy := make([]Wall, len(gs.Walls))
	copy(wallsCopy, gs.Walls)

	historyCopy := make([]Record, len(gs.History))
	copy(historyCopy, gs.History)

	clone := *gs
	clone.Players = playersCopy
	clone.Walls = wallsCopy
	clone.History = historyCopy
	return &clone
}

func (gs *GameState) playerByID(id string) (Player, bool) {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return gs.Players[i], true
		}
	}
	return Player{}, false
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() Player {
	return gs.Players[gs.Current]
}

// Finished reports whether the game has ended.
func (gs *GameState) Finished() bool {
	return gs.Status == Finished
}

// Winner returns the winning player's id, or "" while the game is running or
// after a no-winner forfeit.
func (gs *GameState) Winner() string {
	return gs.WinnerID
}

// ValidateMove reports whether move is legal in the given state. Anything
// off, wrong status, wrong turn, unknown player, malformed or blocked move,
// folds into false: illegal moves are an expected outcome, not an error.
func ValidateMove(gs *GameState, move Move) bool {
	if move == nil || gs.Status != Playing {
		return false
	}
	if gs.CurrentPlayer().ID != move.Mover() {
		return false
	}
	switch m := move.(type) {
	case PawnMove:
		return IsPawnMoveLegal(gs, m.From, m.To, m.PlayerID)
	case WallMove:
		return IsWallLegal(gs, m.Position, m.Orientation, m.PlayerID)
	default:
		return false
	}
}

// ApplyMove commits a move and returns the resulting state. The move must
// already have passed ValidateMove; handing this a structurally impossible
// move (wrong status, unknown player, exhausted wall budget, unknown move
// type) is a caller bug and panics rather than corrupting state.
func ApplyMove(gs *GameState, move Move) *GameState {
	if gs.Status != Playing {
		panic("game is not in play: move was not validated")
	}
	next := gs.Copy()

	switch m := move.(type) {
	case PawnMove:
		i := next.mustPlayerIndex(m.PlayerID)
		next.Players[i].Position = m.To
	case WallMove:
		i := next.mustPlayerIndex(m.PlayerID)
		if next.Players[i].WallsRemaining <= 0 {
			panic("wall budget exhausted: move was not validated")
		}
		next.Players[i].WallsRemaining--
		next.Walls = append(next.Walls, Wall{
			ID:          uuid.NewString(),
			Position:    m.Position,
			Orientation: m.Orientation,
			Owner:       m.PlayerID,
		})
	default:
		panic("unknown move type")
	}

	next.History = append(next.History, Record{
		ID:       uuid.NewString(),
		PlayedAt: time.Now(),
		Move:     move,
	})

	if next.checkWinner() {
		return next
	}
	next.advanceTurn()
	return next
}

func (gs *GameState) mustPlayerIndex(id string) int {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return i
		}
	}
	panic("unknown player: " + id)
}

// checkWinner scans every player, not just the mover, since forfeits can
// also decide a game. Returns true and finalizes the state if someone won.
func (gs *GameState) checkWinner() bool {
	for i := range gs.Players {
		p := &gs.Players[i]
		if AtGoal(p.Position, p.Seat, gs.MaxPlayers) {
			gs.finish(p.ID)
			return true
		}
	}
	return false
}

func (gs *GameState) finish(winnerID string) {
	gs.Status = Finished
	gs.WinnerID = winnerID
	gs.FinishedAt = time.Now()
}

// Forfeit marks one or more players as disconnected and returns the
// resulting state. Several ids at once model a simultaneous drop (e.g. a
// room closing). If at most one contender remains the game finishes
// immediately: the sole connected player wins, or nobody does if everyone is
// gone. No pawn or wall move is needed to trigger this. Finished games are
// left untouched.
func Forfeit(gs *GameState, playerIDs ...string) *GameState {
	next := gs.Copy()
	if next.Status == Finished {
		return next
	}
	for _, id := range playerIDs {
		next.Players[next.mustPlayerIndex(id)].Connected = false
	}

	remaining := -1
	count := 0
	for j := range next.Players {
		if next.Players[j].Connected {
			remaining = j
			count++
		}
	}
	if count > 1 {
		// Still a live game; skip any forfeited seat's turn.
		if !next.CurrentPlayer().Connected {
			next.advanceTurn()
		}
		return next
	}
	if count == 1 {
		next.finish(next.Players[remaining].ID)
	} else {
		next.finish("")
	}
	return next
}

// advanceTurn passes the turn to the next connected player.
func (gs *GameState) advanceTurn() {
	for range gs.Players {
		gs.Current = (gs.Current + 1) % len(gs.Players)
		if gs.Players[gs.Current].Connected {
			return
		}
	}
}

// ValidMoves enumerates every legal move for playerID: all pawn destinations
// plus, while the player has walls left, every wall slot that passes
// placement rules. Off turn or outside Playing it returns an empty list, not
// an error.
func ValidMoves(gs *GameState, playerID string) []Move {
	moves := []Move{}
	if gs.Status != Playing || gs.CurrentPlayer().ID != playerID {
		return moves
	}

	mover := gs.CurrentPlayer()
	for _, dest := range ValidPawnDestinations(gs, playerID) {
		moves = append(moves, PawnMove{PlayerID: playerID, From: mover.Position, To: dest})
	}
	if mover.WallsRemaining > 0 {
		for x := 0; x < WallGridSize; x++ {
			for y := 0; y < WallGridSize; y++ {
				pos := Position{x, y}
				for _, o := range []Orientation{Horizontal, Vertical} {
					if IsWallLegal(gs, pos, o, playerID) {
						moves = append(moves, WallMove{PlayerID: playerID, Position: pos, Orientation: o})
					}
				}
			}
		}
	}
	return moves
}

// Hash returns an FNV-64a digest of the gameplay-relevant state, for cheap
// change detection and immutability checks.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()

	binary.Write(h, binary.LittleEndian, int64(gs.Current))
	binary.Write(h, binary.LittleEndian, int64(gs.Status))
	binary.Write(h, binary.LittleEndian, int64(len(gs.History)))
	h.Write([]byte(gs.WinnerID))

	for i := range gs.Players {
		p := &gs.Players[i]
		binary.Write(h, binary.LittleEndian, int64(p.Position.X))
		binary.Write(h, binary.LittleEndian, int64(p.Position.Y))
		binary.Write(h, binary.LittleEndian, int64(p.WallsRemaining))
		connected := int64(0)
		if p.Connected {
			connected = 1
		}
		binary.Write(h, binary.LittleEndian, connected)
	}
	for _, w := range gs.Walls {
		binary.Write(h, binary.LittleEndian, int64(w.Position.X))
		binary.Write(h, binary.LittleEndian, int64(w.Position.Y))
		binary.Write(h, binary.LittleEndian, int64(w.Orientation))
	}
	return StateHash(h.Sum64())
}
