package board

import "github.com/gammazero/deque"

// DigFieldAt reveals the cell at p. Digging a mine ends the game in
// defeat and reveals every remaining mine; digging a safe cell with no
// neighboring mines cascades through the whole connected zero-
// adjacency region and its numbered border. All cells one call
// touches form a single column-major change batch.
//
// Digging anything but a hidden cell, or digging after the game has
// ended, is a silent no-op: those are routine misclicks, not errors.
func (b *Board) DigFieldAt(p Point) error {
	if err := b.grid.checkBounds(p); err != nil {
		return err
	}
	if b.outcome.Over() {
		return nil
	}
	c := b.grid.at(p)
	if c.overlay != Hidden {
		return nil
	}

	var batch Batch
	if c.mine {
		batch = b.revealMines(p)
	} else {
		batch = b.floodReveal(p)
	}
	batch.sort()
	b.log.Append(batch)

	b.outcome = deriveOutcome(&b.grid, b.mineCount)
	return nil
}

// revealMines uncovers the struck mine and every other mine on the
// board so the renderer can display the full layout after a loss.
func (b *Board) revealMines(struck Point) Batch {
	batch := Batch{struck}
	b.grid.at(struck).overlay = Revealed
	for q := range b.grid.points() {
		c := b.grid.at(q)
		if c.mine && c.overlay != Revealed {
			c.overlay = Revealed
			batch = append(batch, q)
		}
	}
	return batch
}

// floodReveal opens the safe cell at start and cascades breadth-first
// through zero-adjacency cells. An explicit worklist keeps memory
// bounded by the grid size regardless of region shape.
func (b *Board) floodReveal(start Point) Batch {
	var (
		batch Batch
		work  deque.Deque[Point]
	)
	work.PushBack(start)
	for work.Len() > 0 {
		p := work.PopFront()
		c := b.grid.at(p)
		if c.overlay != Hidden {
			continue
		}
		c.overlay = Revealed
		batch = append(batch, p)
		if c.adjacency == 0 {
			for q := range b.grid.neighbors(p) {
				if b.grid.at(q).overlay == Hidden {
					work.PushBack(q)
				}
			}
		}
	}
	return batch
}

// DigPerimeterAt chords on a revealed numbered cell: when the number
// of flagged neighbors equals the cell's adjacency, every hidden
// neighbor is dug as if clicked. Any mismatch makes the whole call a
// silent no-op, since the chord would be ambiguous.
func (b *Board) DigPerimeterAt(p Point) error {
	if err := b.grid.checkBounds(p); err != nil {
		return err
	}
	if b.outcome.Over() {
		return nil
	}
	c := b.grid.at(p)
	if c.overlay != Revealed || c.mine || c.adjacency == 0 {
		return nil
	}

	flagged := 0
	for q := range b.grid.neighbors(p) {
		if b.grid.at(q).overlay == Flagged {
			flagged++
		}
	}
	if flagged != int(c.adjacency) {
		return nil
	}

	for q := range b.grid.neighbors(p) {
		if b.grid.at(q).overlay == Hidden {
			// bounds are already known good, and DigFieldAt
			// no-ops by itself once the game ends mid-chord
			if err := b.DigFieldAt(q); err != nil {
				panic(AssertionError{"chord dug an invalid neighbor: " + err.Error()})
			}
		}
	}
	return nil
}
