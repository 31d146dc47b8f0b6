package board

import (
	"slices"

	"github.com/gammazero/deque"
)

// Batch is the ordered set of coordinates one operation changed,
// sorted column-major so a renderer can animate it column by column.
type Batch []Point

func (b Batch) sort() {
	slices.SortFunc(b, func(p, q Point) int {
		if p.X != q.X {
			return p.X - q.X
		}
		return p.Y - q.Y
	})
}

// ChangeLog is a FIFO queue of batches. The board appends one batch
// per mutating operation; a renderer drains them afterwards at its own
// pace to repaint exactly the cells that changed.
type ChangeLog struct {
	batches deque.Deque[Batch]
}

func (l *ChangeLog) Append(b Batch) {
	if len(b) == 0 {
		return
	}
	l.batches.PushBack(b)
}

func (l *ChangeLog) PendingCount() int {
	return l.batches.Len()
}

// DrainOldest pops and returns the oldest batch, or nil when the log
// is empty.
func (l *ChangeLog) DrainOldest() Batch {
	if l.batches.Len() == 0 {
		return nil
	}
	return l.batches.PopFront()
}

// DrainAll empties the log, returning every pending batch in order.
func (l *ChangeLog) DrainAll() []Batch {
	if l.batches.Len() == 0 {
		return nil
	}
	all := make([]Batch, 0, l.batches.Len())
	for l.batches.Len() > 0 {
		all = append(all, l.batches.PopFront())
	}
	return all
}

func (l *ChangeLog) Clear() {
	l.batches.Clear()
}
