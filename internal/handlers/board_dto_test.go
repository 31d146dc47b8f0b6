package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minefield/minefield-server/internal/board"
)

func TestParseBoardParamsDTO(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  BoardParamsDTO
		bad   bool
	}{
		{
			name:  "beginner",
			query: "width=9&height=9&mine_count=10",
			want:  BoardParamsDTO{Width: 9, Height: 9, MineCount: 10},
		},
		{
			name:  "extra keys ignored",
			query: "width=9&height=9&mine_count=10&x=3&y=4",
			want:  BoardParamsDTO{Width: 9, Height: 9, MineCount: 10},
		},
		{name: "missing mine_count", query: "width=9&height=9", bad: true},
		{name: "non-integer width", query: "width=wide&height=9&mine_count=10", bad: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			values, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			dto, err := ParseBoardParamsDTO(values)
			if test.bad {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, dto)
			assert.Equal(t, board.Point{X: test.want.Width, Y: test.want.Height}, dto.Size())
		})
	}
}

func TestParsePosition(t *testing.T) {
	values, err := url.ParseQuery("x=3&y=14&command=dig")
	require.NoError(t, err)

	pos, err := ParsePosition(values)
	require.NoError(t, err)
	assert.Equal(t, board.Point{X: 3, Y: 14}, pos)

	values, err = url.ParseQuery("x=3")
	require.NoError(t, err)
	_, err = ParsePosition(values)
	assert.Error(t, err)
}
