package board

// Outcome is the derived game result. Undefined means the game is
// still playable; Victory and Defeat are terminal until the next
// Rebuild or Resize.
type Outcome int

const (
	Undefined Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Undefined:
		return "undefined"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return "invalid"
}

func (o Outcome) Over() bool {
	return o != Undefined
}

// deriveOutcome recomputes the outcome from grid state alone: Defeat
// the instant any mine is revealed, Victory once every safe cell is,
// Undefined otherwise.
func deriveOutcome(g *grid, mineCount int) Outcome {
	revealed := 0
	for _, c := range g.cells {
		if c.overlay != Revealed {
			continue
		}
		if c.mine {
			return Defeat
		}
		revealed++
	}
	if revealed == g.size.Area()-mineCount {
		return Victory
	}
	return Undefined
}
