// Package settings persists the player-facing board preferences: the
// last chosen size and mine count plus the "fix aspect ratio" toggle.
// The board core never touches storage; it only receives the parsed
// values.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/minefield/minefield-server/internal/board"
)

type Settings struct {
	Size           string `json:"size"`
	MineCount      int    `json:"mine_count"`
	FixAspectRatio bool   `json:"fix_aspect_ratio"`
}

func Default() Settings {
	return Settings{
		Size:           "9x9",
		MineCount:      10,
		FixAspectRatio: true,
	}
}

// BoardParams parses and validates the stored values against the
// board rules, so a corrupt settings file cannot produce an unplayable
// board.
func (s Settings) BoardParams() (board.Point, int, error) {
	size, err := board.ParsePoint(s.Size)
	if err != nil {
		return board.Point{}, 0, fmt.Errorf("invalid size setting: %w", err)
	}
	if size.X < 1 || size.Y < 1 {
		return board.Point{}, 0, fmt.Errorf(
			"%w: size setting %v must be at least 1x1", board.ErrOutOfDomain, size)
	}
	if s.MineCount < 1 || s.MineCount > size.Area()-1 {
		return board.Point{}, 0, fmt.Errorf(
			"%w: mine count setting %d must be in [1, %d]",
			board.ErrOutOfDomain, s.MineCount, size.Area()-1)
	}
	return size, s.MineCount, nil
}

// Load reads settings from path, falling back to defaults when the
// file does not exist yet.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("unable to parse settings file: %w", err)
	}
	return s, nil
}

func (s Settings) Save(path string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
