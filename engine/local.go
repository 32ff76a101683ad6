package engine

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"quoridor/game"
)

// updateBuffer bounds how many committed moves a match retains for a slow
// consumer before it starts dropping the oldest history.
const updateBuffer = 64

// Update is one committed move fanned out to consumers, with the state it
// produced and its hash for cheap change detection.
type Update struct {
	Record game.Record
	State  *game.GameState
	Hash   game.StateHash
}

// Match serializes all mutations of one logical game. The rules engine is
// pure and trusts the state it is handed to be the latest committed one, so
// the read-modify-write around ApplyMove has to happen under one lock.
type Match struct {
	mu       sync.Mutex
	state    *game.GameState
	updateCh chan Update
	closed   bool
}

func newMatch(state *game.GameState) *Match {
	return &Match{
		state:    state,
		updateCh: make(chan Update, updateBuffer),
	}
}

// ID returns the game id.
func (m *Match) ID() string {
	return m.state.ID
}

// State returns a copy of the latest committed state.
func (m *Match) State() *game.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Copy()
}

// Play validates and applies a move against the latest committed state.
func (m *Match) Play(move game.Move) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Finished() {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if !game.ValidateMove(m.state, move) {
		return fmt.Errorf("illegal move")
	}

	next := game.ApplyMove(m.state, move)
	m.state = next

	record := next.History[len(next.History)-1]
	log.Info().
		Str("game", next.ID).
		Str("move", record.ID).
		Str("player", move.Mover()).
		Msg("move committed")
	m.publish(record, next)

	if next.Finished() {
		m.finishLocked(next)
	}
	return nil
}

// Forfeit marks a player as disconnected, outside the move pipeline.
func (m *Match) Forfeit(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Finished() {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if _, ok := playerIn(m.state, playerID); !ok {
		return fmt.Errorf("player not in game")
	}

	next := game.Forfeit(m.state, playerID)
	m.state = next

	log.Info().
		Str("game", next.ID).
		Str("player", playerID).
		Msg("player forfeited")
	if next.Finished() {
		m.finishLocked(next)
	}
	return nil
}

// PollUpdate returns the next committed update, or ok=false if none is
// pending or the match is over and drained. Never blocks.
func (m *Match) PollUpdate() (Update, bool) {
	select {
	case u, ok := <-m.updateCh:
		if !ok {
			return Update{}, false
		}
		return u, true
	default:
		return Update{}, false
	}
}

func (m *Match) publish(record game.Record, state *game.GameState) {
	u := Update{Record: record, State: state.Copy(), Hash: state.Hash()}
	for {
		select {
		case m.updateCh <- u:
			return
		default:
			// Consumer fell behind; drop the oldest pending update.
			select {
			case dropped := <-m.updateCh:
				log.Warn().
					Str("game", state.ID).
					Str("move", dropped.Record.ID).
					Msg("dropping unconsumed update")
			default:
			}
		}
	}
}

func (m *Match) finishLocked(final *game.GameState) {
	if m.closed {
		return
	}
	m.closed = true
	close(m.updateCh)
	if final.Winner() != "" {
		log.Info().Str("game", final.ID).Str("winner", final.Winner()).Msg("game over")
	} else {
		log.Info().Str("game", final.ID).Msg("game over with no winner")
	}
}

func playerIn(gs *game.GameState, playerID string) (game.Player, bool) {
	for _, p := range gs.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return game.Player{}, false
}
