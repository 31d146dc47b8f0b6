package board

import (
	"fmt"
	"strconv"
)

// PeakDanger is the number of adjacency levels a revealed safe cell
// can report (0..7 neighbors plus the level 8 itself) and doubles as
// the encoded state of a revealed mine.
const PeakDanger = 8

// Overlay is the player-visible covering of a cell. The ground truth
// (mine or not) lives alongside it and stays invisible until the cell
// is revealed.
type Overlay uint8

const (
	Hidden Overlay = iota
	Flagged
	Questioned
	Revealed
)

func (o Overlay) String() string {
	switch o {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	case Revealed:
		return "revealed"
	}
	return "invalid"
}

// CellState is the single-integer encoding of a cell handed to
// renderers:
//
//   - -1 means the cell is hidden.
//
//   - -2 means the cell is flagged.
//
//   - -3 means the cell is marked with a question mark.
//
//   - 0 to PeakDanger-1 mean the cell is open with that many
//     neighboring mines.
//
//   - PeakDanger means the cell is open and is itself a mine.
type CellState int8

const (
	StateHidden     CellState = -1
	StateFlagged    CellState = -2
	StateQuestioned CellState = -3
	StateMine       CellState = PeakDanger
)

func (s CellState) String() string {
	switch {
	case s == StateHidden:
		return "-"
	case s == StateFlagged:
		return "*"
	case s == StateQuestioned:
		return "?"
	case s == StateMine:
		return "@"
	case 0 <= s && s < PeakDanger:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type cell struct {
	mine      bool
	overlay   Overlay
	adjacency uint8
}

// state encodes the cell for the query boundary.
func (c cell) state() CellState {
	switch c.overlay {
	case Hidden:
		return StateHidden
	case Flagged:
		return StateFlagged
	case Questioned:
		return StateQuestioned
	case Revealed:
		if c.mine {
			return StateMine
		}
		return CellState(c.adjacency)
	}
	panic(AssertionError{fmt.Sprintf("invalid overlay %d", c.overlay)})
}
