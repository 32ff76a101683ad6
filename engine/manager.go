package engine

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"quoridor/game"
)

var ErrMatchNotFound = errors.New("match not found")

// Manager is an in-process registry of live matches keyed by game id.
type Manager struct {
	mu      sync.RWMutex
	matches map[string]*Match
}

func NewManager() *Manager {
	return &Manager{matches: make(map[string]*Match)}
}

// NewMatch creates a game for the given players and registers it.
func (mgr *Manager) NewMatch(playerIDs []string, maxPlayers int) (*Match, error) {
	state, err := game.NewGame(playerIDs, maxPlayers)
	if err != nil {
		return nil, err
	}
	m := newMatch(state)

	mgr.mu.Lock()
	mgr.matches[state.ID] = m
	mgr.mu.Unlock()

	log.Info().
		Str("game", state.ID).
		Int("players", maxPlayers).
		Msg("match created")
	return m, nil
}

// Get returns the match for a game id.
func (mgr *Manager) Get(id string) (*Match, error) {
	mgr.mu.RLock()
	defer mgr.mu.RUnlock()
	m, ok := mgr.matches[id]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// Play routes a move to the identified match.
func (mgr *Manager) Play(id string, move game.Move) error {
	m, err := mgr.Get(id)
	if err != nil {
		return err
	}
	return m.Play(move)
}

// Forfeit routes a disconnection to the identified match.
func (mgr *Manager) Forfeit(id, playerID string) error {
	m, err := mgr.Get(id)
	if err != nil {
		return err
	}
	return m.Forfeit(playerID)
}

// Remove unregisters a finished match. Removing an unknown id is a no-op.
func (mgr *Manager) Remove(id string) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	delete(mgr.matches, id)
}
