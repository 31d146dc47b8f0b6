package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeLogFIFO(t *testing.T) {
	var log ChangeLog
	assert.Zero(t, log.PendingCount())
	assert.Nil(t, log.DrainOldest())

	first := Batch{{0, 0}}
	second := Batch{{1, 0}, {1, 1}}
	log.Append(first)
	log.Append(second)
	log.Append(nil) // empty batches are dropped

	require.Equal(t, 2, log.PendingCount())
	assert.Equal(t, first, log.DrainOldest())
	assert.Equal(t, second, log.DrainOldest())
	assert.Nil(t, log.DrainOldest())
}

func TestChangeLogDrainAll(t *testing.T) {
	var log ChangeLog
	assert.Nil(t, log.DrainAll())

	log.Append(Batch{{0, 0}})
	log.Append(Batch{{1, 1}})

	all := log.DrainAll()
	require.Len(t, all, 2)
	assert.Equal(t, Batch{{0, 0}}, all[0])
	assert.Equal(t, Batch{{1, 1}}, all[1])
	assert.Zero(t, log.PendingCount())
}

func TestBatchSortIsColumnMajor(t *testing.T) {
	b := Batch{{2, 0}, {0, 1}, {1, 2}, {0, 0}, {1, 0}, {2, 2}}
	b.sort()
	assert.Equal(t, Batch{{0, 0}, {0, 1}, {1, 0}, {1, 2}, {2, 0}, {2, 2}}, b)
}

func TestChangeLogClear(t *testing.T) {
	var log ChangeLog
	log.Append(Batch{{0, 0}})
	log.Clear()
	assert.Zero(t, log.PendingCount())
}
