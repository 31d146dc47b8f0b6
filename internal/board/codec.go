package board

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
)

// snapshot is the gob wire form of a board. The change log is not
// part of it: pending batches belong to whatever renderer was
// attached when the board was serialized.
type snapshot struct {
	Size      Point
	MineCount int
	Mines     []bool
	Overlays  []Overlay
	Adjacency []uint8
	Outcome   Outcome
}

func (b *Board) Bytes() ([]byte, error) {
	s := snapshot{
		Size:      b.size,
		MineCount: b.mineCount,
		Mines:     make([]bool, len(b.grid.cells)),
		Overlays:  make([]Overlay, len(b.grid.cells)),
		Adjacency: make([]uint8, len(b.grid.cells)),
		Outcome:   b.outcome,
	}
	for i, c := range b.grid.cells {
		s.Mines[i] = c.mine
		s.Overlays[i] = c.overlay
		s.Adjacency[i] = c.adjacency
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Decode(buf []byte, r *rand.Rand) (*Board, error) {
	var s snapshot
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s); err != nil {
		return nil, err
	}
	if err := validateParams(s.Size, s.MineCount); err != nil {
		return nil, err
	}
	area := s.Size.Area()
	if len(s.Mines) != area || len(s.Overlays) != area || len(s.Adjacency) != area {
		return nil, fmt.Errorf("%w: snapshot cell count does not match size %v",
			ErrBadValue, s.Size)
	}
	b := &Board{
		size:      s.Size,
		mineCount: s.MineCount,
		grid:      newGrid(s.Size),
		outcome:   s.Outcome,
		rnd:       r,
	}
	for i := range b.grid.cells {
		b.grid.cells[i] = cell{
			mine:      s.Mines[i],
			overlay:   s.Overlays[i],
			adjacency: s.Adjacency[i],
		}
	}
	return b, nil
}
