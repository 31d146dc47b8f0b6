package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		input string
		want  Point
		err   error
	}{
		{input: "9x9", want: Point{9, 9}},
		{input: "30x16", want: Point{30, 16}},
		{input: "0x0", want: Point{0, 0}},
		{input: "9", err: ErrBadValue},
		{input: "", err: ErrBadValue},
		{input: "ax9", err: ErrBadValue},
		{input: "9xb", err: ErrBadValue},
		{input: "9x9x9", err: ErrBadValue},
		{input: "-1x9", err: ErrOutOfDomain},
		{input: "9x-1", err: ErrOutOfDomain},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParsePoint(test.input)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "30x16", Point{30, 16}.String())

	p, err := ParsePoint(Point{9, 9}.String())
	assert.NoError(t, err)
	assert.Equal(t, Point{9, 9}, p)
}

func TestPointMap(t *testing.T) {
	double := func(v int) int { return v * 2 }
	assert.Equal(t, Point{6, 8}, Point{3, 4}.Map(double))
}

func TestPointArea(t *testing.T) {
	assert.Equal(t, 480, Point{30, 16}.Area())
	assert.Equal(t, 1, Point{1, 1}.Area())
}

func TestParsePointErrorKinds(t *testing.T) {
	// malformed text and negative components must stay distinguishable
	_, err := ParsePoint("wide")
	assert.True(t, errors.Is(err, ErrBadValue))
	assert.False(t, errors.Is(err, ErrOutOfDomain))

	_, err = ParsePoint("-3x4")
	assert.True(t, errors.Is(err, ErrOutOfDomain))
	assert.False(t, errors.Is(err, ErrBadValue))
}
