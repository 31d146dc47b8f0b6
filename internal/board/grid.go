package board

import (
	"fmt"
	"iter"
	"strings"
)

// grid is a fixed-size row-major array of cells. It owns raw access
// and bounds checking; all gameplay rules live above it.
type grid struct {
	size  Point
	cells []cell
}

func newGrid(size Point) grid {
	return grid{
		size:  size,
		cells: make([]cell, size.Area()),
	}
}

func (g grid) checkBounds(p Point) error {
	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("%w: negative position %v", ErrOutOfDomain, p)
	}
	if p.X >= g.size.X || p.Y >= g.size.Y {
		return fmt.Errorf("%w: position %v on a %v board", ErrOutOfRange, p, g.size)
	}
	return nil
}

func (g grid) index(p Point) int {
	return p.Y*g.size.X + p.X
}

// at returns the cell at p without bounds checking; callers validate
// first via checkBounds.
func (g *grid) at(p Point) *cell {
	return &g.cells[g.index(p)]
}

// neighbors yields the up-to-8 in-bounds neighbors of p sharing an
// edge or a corner with it.
func (g grid) neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := Point{p.X + dx, p.Y + dy}
				if n.X < 0 || n.X >= g.size.X ||
					n.Y < 0 || n.Y >= g.size.Y {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// points yields every position of the grid in row-major order.
func (g grid) points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range g.size.Y {
			for x := range g.size.X {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

func (g grid) String() string {
	var b strings.Builder
	for y := range g.size.Y {
		for x := range g.size.X {
			fmt.Fprint(&b, g.cells[y*g.size.X+x].state().String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
