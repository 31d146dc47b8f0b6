package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minefield/minefield-server/internal/board"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := Settings{Size: "30x16", MineCount: 99, FixAspectRatio: false}

	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestBoardParams(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		size     board.Point
		count    int
		wantErr  bool
	}{
		{
			name:     "defaults",
			settings: Default(),
			size:     board.Point{X: 9, Y: 9},
			count:    10,
		},
		{
			name:     "expert",
			settings: Settings{Size: "30x16", MineCount: 170},
			size:     board.Point{X: 30, Y: 16},
			count:    170,
		},
		{
			name:     "malformed size",
			settings: Settings{Size: "30by16", MineCount: 99},
			wantErr:  true,
		},
		{
			name:     "zero size",
			settings: Settings{Size: "0x16", MineCount: 1},
			wantErr:  true,
		},
		{
			name:     "too many mines",
			settings: Settings{Size: "3x3", MineCount: 9},
			wantErr:  true,
		},
		{
			name:     "no mines",
			settings: Settings{Size: "3x3", MineCount: 0},
			wantErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size, count, err := test.settings.BoardParams()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.size, size)
			assert.Equal(t, test.count, count)
		})
	}
}
