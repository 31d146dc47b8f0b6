package board

// MarkFieldAt cycles the overlay of a covered cell one step through
// hidden → flagged → questioned → hidden. Marking a revealed cell or
// marking after the game has ended is a silent no-op. Marking never
// exposes ground truth and never changes the outcome.
func (b *Board) MarkFieldAt(p Point) error {
	if err := b.grid.checkBounds(p); err != nil {
		return err
	}
	if b.outcome.Over() {
		return nil
	}
	c := b.grid.at(p)
	switch c.overlay {
	case Hidden:
		c.overlay = Flagged
	case Flagged:
		c.overlay = Questioned
	case Questioned:
		c.overlay = Hidden
	case Revealed:
		return nil
	}
	b.log.Append(Batch{p})
	return nil
}
