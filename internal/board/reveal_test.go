package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (b *Board) mustState(t *testing.T, p Point) CellState {
	t.Helper()
	s, err := b.StateAt(p)
	require.NoError(t, err)
	return s
}

func TestDigCascadesZeroRegion(t *testing.T) {
	// mine in the corner: every other cell is one connected region of
	// zero-adjacency cells plus its numbered border
	b := testBoard(t, Point{3, 3}, Point{0, 0})

	require.NoError(t, b.DigFieldAt(Point{2, 2}))

	assert.Equal(t, Victory, b.Outcome())
	assert.Equal(t, StateHidden, b.mustState(t, Point{0, 0}))
	assert.Equal(t, CellState(1), b.mustState(t, Point{1, 0}))
	assert.Equal(t, CellState(1), b.mustState(t, Point{0, 1}))
	assert.Equal(t, CellState(1), b.mustState(t, Point{1, 1}))
	assert.Equal(t, CellState(0), b.mustState(t, Point{2, 0}))
	assert.Equal(t, CellState(0), b.mustState(t, Point{0, 2}))
	assert.Equal(t, CellState(0), b.mustState(t, Point{2, 2}))

	// the whole cascade is one batch, ordered column-major
	log := b.Modifications()
	require.Equal(t, 1, log.PendingCount())
	batch := log.DrainOldest()
	assert.Equal(t, Batch{
		{0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}, batch)
	assert.Zero(t, log.PendingCount())
}

func TestDigStopsAtNumberedBorder(t *testing.T) {
	// a wall of mines at x=2 splits a 5x1 board; digging the left end
	// must not leak past the border cell
	b := testBoard(t, Point{5, 1}, Point{2, 0})

	require.NoError(t, b.DigFieldAt(Point{0, 0}))

	assert.Equal(t, CellState(0), b.mustState(t, Point{0, 0}))
	assert.Equal(t, CellState(1), b.mustState(t, Point{1, 0}))
	assert.Equal(t, StateHidden, b.mustState(t, Point{2, 0}))
	assert.Equal(t, StateHidden, b.mustState(t, Point{3, 0}))
	assert.Equal(t, StateHidden, b.mustState(t, Point{4, 0}))
	assert.Equal(t, Undefined, b.Outcome())
}

func TestDigMineIsDefeat(t *testing.T) {
	b := testBoard(t, Point{4, 4}, Point{0, 0}, Point{3, 3})

	require.NoError(t, b.DigFieldAt(Point{0, 0}))

	assert.Equal(t, Defeat, b.Outcome())
	// every mine is exposed for display
	assert.Equal(t, StateMine, b.mustState(t, Point{0, 0}))
	assert.Equal(t, StateMine, b.mustState(t, Point{3, 3}))
	// non-mine cells stay covered
	assert.Equal(t, StateHidden, b.mustState(t, Point{1, 1}))

	log := b.Modifications()
	require.Equal(t, 1, log.PendingCount())
	assert.Equal(t, Batch{{0, 0}, {3, 3}}, log.DrainOldest())
}

func TestDigNoOps(t *testing.T) {
	b := testBoard(t, Point{3, 3}, Point{0, 0})

	// digging a flagged cell leaves it flagged
	require.NoError(t, b.MarkFieldAt(Point{0, 0}))
	b.Modifications().Clear()
	require.NoError(t, b.DigFieldAt(Point{0, 0}))
	assert.Equal(t, StateFlagged, b.mustState(t, Point{0, 0}))
	assert.Equal(t, Undefined, b.Outcome())
	assert.Zero(t, b.Modifications().PendingCount())

	// digging an already revealed cell records nothing
	require.NoError(t, b.DigFieldAt(Point{1, 1}))
	b.Modifications().Clear()
	require.NoError(t, b.DigFieldAt(Point{1, 1}))
	assert.Zero(t, b.Modifications().PendingCount())
}

func TestDigAfterGameOver(t *testing.T) {
	b := testBoard(t, Point{2, 2}, Point{0, 0})
	require.NoError(t, b.DigFieldAt(Point{0, 0}))
	require.Equal(t, Defeat, b.Outcome())
	b.Modifications().Clear()

	require.NoError(t, b.DigFieldAt(Point{1, 1}))
	assert.Equal(t, StateHidden, b.mustState(t, Point{1, 1}))
	assert.Equal(t, Defeat, b.Outcome())
	assert.Zero(t, b.Modifications().PendingCount())
}

func TestVictoryOnlyWhenAllSafeCellsRevealed(t *testing.T) {
	b := testBoard(t, Point{2, 1}, Point{0, 0})
	assert.Equal(t, Undefined, b.Outcome())

	require.NoError(t, b.DigFieldAt(Point{1, 0}))
	assert.Equal(t, Victory, b.Outcome())
}

func TestChord(t *testing.T) {
	// 3x3, mine at (0,0); (1,1) shows 1
	newChordBoard := func(t *testing.T) *Board {
		b := testBoard(t, Point{3, 3}, Point{0, 0})
		require.NoError(t, b.DigFieldAt(Point{1, 1}))
		b.Modifications().Clear()
		return b
	}

	t.Run("no-op on hidden cell", func(t *testing.T) {
		b := newChordBoard(t)
		require.NoError(t, b.DigPerimeterAt(Point{2, 2}))
		assert.Zero(t, b.Modifications().PendingCount())
	})

	t.Run("no-op without matching flags", func(t *testing.T) {
		b := newChordBoard(t)
		require.NoError(t, b.DigPerimeterAt(Point{1, 1}))
		assert.Zero(t, b.Modifications().PendingCount())
		assert.Equal(t, StateHidden, b.mustState(t, Point{0, 0}))
	})

	t.Run("no-op with too many flags", func(t *testing.T) {
		b := newChordBoard(t)
		require.NoError(t, b.MarkFieldAt(Point{0, 0}))
		require.NoError(t, b.MarkFieldAt(Point{1, 0}))
		b.Modifications().Clear()
		require.NoError(t, b.DigPerimeterAt(Point{1, 1}))
		assert.Zero(t, b.Modifications().PendingCount())
	})

	t.Run("correct flag digs the rest", func(t *testing.T) {
		b := newChordBoard(t)
		require.NoError(t, b.MarkFieldAt(Point{0, 0}))
		b.Modifications().Clear()

		require.NoError(t, b.DigPerimeterAt(Point{1, 1}))

		assert.Equal(t, Victory, b.Outcome())
		assert.Equal(t, StateFlagged, b.mustState(t, Point{0, 0}))
		assert.Equal(t, CellState(1), b.mustState(t, Point{1, 0}))
		assert.Equal(t, CellState(0), b.mustState(t, Point{2, 2}))
	})

	t.Run("wrong flag blows up", func(t *testing.T) {
		b := newChordBoard(t)
		// flag a safe neighbor instead of the mine
		require.NoError(t, b.MarkFieldAt(Point{1, 0}))
		b.Modifications().Clear()

		require.NoError(t, b.DigPerimeterAt(Point{1, 1}))

		assert.Equal(t, Defeat, b.Outcome())
		assert.Equal(t, StateMine, b.mustState(t, Point{0, 0}))
	})
}

func TestChordOutOfRange(t *testing.T) {
	b := testBoard(t, Point{3, 3}, Point{0, 0})
	assert.ErrorIs(t, b.DigPerimeterAt(Point{5, 5}), ErrOutOfRange)
	assert.ErrorIs(t, b.DigPerimeterAt(Point{-1, 2}), ErrOutOfDomain)
}
