// Package board implements the Minesweeper board state machine: cell
// storage, mine placement, flood-fill and perimeter revealing, overlay
// marking, win/loss detection and an incremental change log that lets
// a renderer replay exactly the cells each operation mutated.
package board

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

// Board is the façade over one grid and one change log. It is not
// safe for concurrent use; callers serialize access the way an event
// loop serializes input.
type Board struct {
	size      Point
	mineCount int
	grid      grid
	outcome   Outcome
	log       ChangeLog
	rnd       *rand.Rand
}

func validateParams(size Point, mineCount int) error {
	if size.X < 1 || size.Y < 1 {
		return fmt.Errorf("%w: board size %v must be at least 1x1",
			ErrOutOfDomain, size)
	}
	if mineCount < 1 || mineCount > size.Area()-1 {
		return fmt.Errorf("%w: mine count %d on a %v board must be in [1, %d]",
			ErrOutOfDomain, mineCount, size, size.Area()-1)
	}
	return nil
}

// New builds a playable board of the given size with mineCount
// randomly placed mines. The mine count must leave at least one safe
// cell.
func New(size Point, mineCount int, r *rand.Rand) (*Board, error) {
	if err := validateParams(size, mineCount); err != nil {
		return nil, err
	}
	b := &Board{
		size:      size,
		mineCount: mineCount,
		rnd:       r,
	}
	b.build()
	return b, nil
}

func (b *Board) build() {
	b.grid = newGrid(b.size)
	b.grid.placeMines(b.mineCount, b.rnd)
	b.outcome = Undefined
	b.log.Clear()
}

// Rebuild discards the grid and the change log and starts a fresh
// game with the same size and mine count.
func (b *Board) Rebuild() {
	b.build()
}

// Resize validates the new dimensions and then rebuilds with them.
// Invalid inputs leave the board untouched.
func (b *Board) Resize(size Point, mineCount int) error {
	if err := validateParams(size, mineCount); err != nil {
		return err
	}
	b.size = size
	b.mineCount = mineCount
	b.build()
	return nil
}

func (b *Board) Size() Point {
	return b.size
}

func (b *Board) MineCount() int {
	return b.mineCount
}

func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Modifications exposes the change log for draining by a renderer.
func (b *Board) Modifications() *ChangeLog {
	return &b.log
}

// StateAt returns the encoded state of the cell at p.
func (b *Board) StateAt(p Point) (CellState, error) {
	if err := b.grid.checkBounds(p); err != nil {
		return 0, err
	}
	return b.grid.at(p).state(), nil
}

// States returns the encoded state of every cell in row-major order.
func (b *Board) States() []CellState {
	states := make([]CellState, 0, len(b.grid.cells))
	for _, c := range b.grid.cells {
		states = append(states, c.state())
	}
	return states
}

func (b *Board) String() string {
	return b.grid.String()
}
