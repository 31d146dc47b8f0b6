package board

import "errors"

var (
	// ErrBadValue marks inputs that are not integers at all, e.g.
	// malformed "WxH" text.
	ErrBadValue = errors.New("bad value")

	// ErrOutOfDomain marks integer inputs outside their allowed
	// domain: negative coordinates, a zero-area size, a mine count
	// that leaves no safe cell.
	ErrOutOfDomain = errors.New("out of domain")

	// ErrOutOfRange marks well-formed positions that fall outside the
	// current grid.
	ErrOutOfRange = errors.New("out of range")
)

// AssertionError reports a broken internal invariant. It is only ever
// panicked, never returned.
type AssertionError struct {
	message string
}

func (e AssertionError) Error() string {
	return e.message
}
