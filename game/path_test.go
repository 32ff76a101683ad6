package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPathToGoal(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.True(t, HasPathToGoal(Position{4, 0}, 0, 2, nil))
		require.True(t, HasPathToGoal(Position{4, 8}, 1, 2, nil))
	})

	t.Run("already on the goal line", func(t *testing.T) {
		require.True(t, HasPathToGoal(Position{0, 8}, 0, 2, nil))
	})

	t.Run("walls force a detour but not a cutoff", func(t *testing.T) {
		walls := []Wall{
			{Position: Position{3, 4}, Orientation: Horizontal},
			{Position: Position{5, 4}, Orientation: Horizontal},
		}
		require.True(t, HasPathToGoal(Position{4, 0}, 0, 2, walls))
	})

	t.Run("sealed pocket has no path", func(t *testing.T) {
		// Box in the two corner cells (0,0) and (1,0): one wall above,
		// one to the right.
		walls := []Wall{
			{Position: Position{0, 0}, Orientation: Horizontal},
			{Position: Position{1, 0}, Orientation: Vertical},
		}
		require.False(t, HasPathToGoal(Position{0, 0}, 0, 2, walls),
			"pawn boxed into the corner cannot reach row 8")
		require.True(t, HasPathToGoal(Position{2, 0}, 0, 2, walls),
			"pawns outside the pocket are unaffected")
	})

	t.Run("does not mutate the wall set", func(t *testing.T) {
		walls := []Wall{{Position: Position{3, 4}, Orientation: Horizontal}}
		before := make([]Wall, len(walls))
		copy(before, walls)

		HasPathToGoal(Position{4, 0}, 0, 2, walls)
		HasPathToGoal(Position{4, 8}, 1, 2, walls)

		require.Equal(t, before, walls)
	})
}
