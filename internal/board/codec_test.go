package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	b := testBoard(t, Point{4, 4}, Point{0, 0}, Point{3, 1})
	require.NoError(t, b.DigFieldAt(Point{3, 3}))
	require.NoError(t, b.MarkFieldAt(Point{0, 0}))

	buf, err := b.Bytes()
	require.NoError(t, err)

	restored, err := Decode(buf, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	assert.Equal(t, b.Size(), restored.Size())
	assert.Equal(t, b.MineCount(), restored.MineCount())
	assert.Equal(t, b.Outcome(), restored.Outcome())
	assert.Equal(t, b.States(), restored.States())

	// the restored board remains playable
	require.NoError(t, restored.DigFieldAt(Point{1, 1}))
	restored.Rebuild()
	assert.Equal(t, restored.MineCount(), restored.countMines())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not a gob stream"), rand.New(rand.NewPCG(1, 2)))
	assert.Error(t, err)
}
