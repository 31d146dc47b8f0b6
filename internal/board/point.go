package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D integer vector used both as a grid address and as a
// board size. The canonical text form is "WxH", e.g. "30x16".
type Point struct {
	X int `json:"x" schema:"x,required"`
	Y int `json:"y" schema:"y,required"`
}

func (p Point) String() string {
	return fmt.Sprintf("%dx%d", p.X, p.Y)
}

// Map returns a new Point with f applied to both components.
func (p Point) Map(f func(int) int) Point {
	return Point{f(p.X), f(p.Y)}
}

func (p Point) Area() int {
	return p.X * p.Y
}

func ParsePoint(s string) (Point, error) {
	left, right, found := strings.Cut(s, "x")
	if !found {
		return Point{}, fmt.Errorf(`%w: %q is not of form "WxH"`, ErrBadValue, s)
	}
	x, err := strconv.Atoi(left)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q is not an integer", ErrBadValue, left)
	}
	y, err := strconv.Atoi(right)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q is not an integer", ErrBadValue, right)
	}
	if x < 0 || y < 0 {
		return Point{}, fmt.Errorf("%w: %q has negative components", ErrOutOfDomain, s)
	}
	return Point{x, y}, nil
}
