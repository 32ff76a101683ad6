package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"quoridor/engine"
	"quoridor/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	runDemoGame()
}

// runDemoGame plays a short scripted two-player opening to show the engine
// API end to end: pawn steps, a wall placement, and a forfeit finish.
func runDemoGame() {
	mgr := engine.NewManager()
	match, err := mgr.NewMatch([]string{"alice", "bob"}, 2)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create match")
	}

	moves := []game.Move{
		game.PawnMove{PlayerID: "alice", From: game.Position{X: 4, Y: 0}, To: game.Position{X: 4, Y: 1}},
		game.PawnMove{PlayerID: "bob", From: game.Position{X: 4, Y: 8}, To: game.Position{X: 4, Y: 7}},
		game.WallMove{PlayerID: "alice", Position: game.Position{X: 3, Y: 6}, Orientation: game.Horizontal},
		game.PawnMove{PlayerID: "bob", From: game.Position{X: 4, Y: 7}, To: game.Position{X: 5, Y: 7}},
	}
	for _, mv := range moves {
		if err := match.Play(mv); err != nil {
			log.Fatal().Err(err).Msgf("scripted move %+v rejected", mv)
		}
	}

	state := match.State()
	valid := game.ValidMoves(state, state.CurrentPlayer().ID)
	log.Info().
		Str("player", state.CurrentPlayer().Name).
		Int("choices", len(valid)).
		Msg("legal moves available")

	if err := match.Forfeit("bob"); err != nil {
		log.Fatal().Err(err).Msg("forfeit failed")
	}

	for {
		u, ok := match.PollUpdate()
		if !ok {
			break
		}
		log.Info().
			Str("move", u.Record.ID).
			Uint64("state", uint64(u.Hash)).
			Msg("observed update")
	}

	final := match.State()
	log.Info().
		Str("winner", final.Winner()).
		Int("moves", len(final.History)).
		Msg("demo game finished")
}
