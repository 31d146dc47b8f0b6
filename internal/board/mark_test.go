package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkCycle(t *testing.T) {
	b := testBoard(t, Point{3, 3}, Point{0, 0})
	p := Point{1, 1}

	wants := []CellState{
		StateFlagged, StateQuestioned, StateHidden, // full cycle
		StateFlagged, // and it keeps going
	}
	for i, want := range wants {
		require.NoError(t, b.MarkFieldAt(p))
		assert.Equal(t, want, b.mustState(t, p), "after %d marks", i+1)
		assert.Equal(t, Undefined, b.Outcome())
	}

	// each cycle step is its own single-point batch
	log := b.Modifications()
	require.Equal(t, len(wants), log.PendingCount())
	assert.Equal(t, Batch{p}, log.DrainOldest())
}

func TestMarkRevealedCellNoOp(t *testing.T) {
	b := testBoard(t, Point{3, 3}, Point{0, 0})
	require.NoError(t, b.DigFieldAt(Point{1, 1}))
	b.Modifications().Clear()

	require.NoError(t, b.MarkFieldAt(Point{1, 1}))

	assert.Equal(t, CellState(1), b.mustState(t, Point{1, 1}))
	assert.Zero(t, b.Modifications().PendingCount())
}

func TestMarkAfterGameOverNoOp(t *testing.T) {
	b := testBoard(t, Point{2, 2}, Point{0, 0})
	require.NoError(t, b.DigFieldAt(Point{0, 0}))
	require.Equal(t, Defeat, b.Outcome())
	b.Modifications().Clear()

	require.NoError(t, b.MarkFieldAt(Point{1, 1}))

	assert.Equal(t, StateHidden, b.mustState(t, Point{1, 1}))
	assert.Zero(t, b.Modifications().PendingCount())
}

func TestMarkNeverTouchesOutcome(t *testing.T) {
	b := testBoard(t, Point{2, 1}, Point{0, 0})

	// flagging the mine is not a win condition
	require.NoError(t, b.MarkFieldAt(Point{0, 0}))
	assert.Equal(t, Undefined, b.Outcome())

	require.NoError(t, b.MarkFieldAt(Point{1, 0}))
	require.NoError(t, b.MarkFieldAt(Point{1, 0}))
	require.NoError(t, b.MarkFieldAt(Point{1, 0}))
	assert.Equal(t, Undefined, b.Outcome())
}

func TestMarkOutOfRange(t *testing.T) {
	b := testBoard(t, Point{3, 3}, Point{0, 0})
	assert.ErrorIs(t, b.MarkFieldAt(Point{3, 3}), ErrOutOfRange)
	assert.ErrorIs(t, b.MarkFieldAt(Point{0, -1}), ErrOutOfDomain)
}
